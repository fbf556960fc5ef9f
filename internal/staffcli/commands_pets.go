package staffcli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"pet-adoption-store/internal/domain/catalog"
	"pet-adoption-store/internal/domain/employees"
	"pet-adoption-store/internal/domain/orders"
)

func (c *CLI) cmdSearchPets(ctx context.Context, sess employees.StaffSession, args []string) {
	if len(args) == 0 {
		fmt.Fprintln(c.out, "Usage: search-pets <field1> <value1> [<field2> <value2> ...]")
		fmt.Fprintln(c.out, "To search for multiple values (OR), use a comma: species cat,dog")
		return
	}
	if len(args)%2 != 0 {
		fmt.Fprintln(c.out, "Error: Must provide an even number of arguments (alternating field and value pairs).")
		return
	}

	pets, err := c.pets.Search(ctx, args)
	if err != nil {
		fmt.Fprintf(c.out, "ERROR searching Pets: %v\n", err)
		return
	}

	if len(pets) == 0 {
		fmt.Fprintln(c.out, "\nNo pets found matching the criteria.")
		return
	}

	fmt.Fprintf(c.out, "\nFound %d pet(s) matching the criteria:\n", len(pets))
	for _, p := range pets {
		c.printPet(p)
	}
	fmt.Fprintln(c.out, "-----------------------------------------")
}

func (c *CLI) cmdViewPet(ctx context.Context, sess employees.StaffSession, args []string) {
	if len(args) != 1 {
		fmt.Fprintln(c.out, "Usage: view-pet <pet_id>")
		return
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		fmt.Fprintln(c.out, "Error: Pet ID must be a positive number.")
		return
	}

	p, err := c.pets.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			fmt.Fprintf(c.out, "Pet ID %d not found.\n", id)
		} else {
			fmt.Fprintf(c.out, "ERROR retrieving Pet: %v\n", err)
		}
		return
	}

	c.printPet(p)
	fmt.Fprintf(c.out, "Description: %s\n", p.GeneralDescription)
	fmt.Fprintf(c.out, "Health Info: %s\n", p.HealthInfo)
}

// add-pet name=Luna species=cat gender=female age=2 adoptionfee=60 [breed=...] ...
func (c *CLI) cmdAddPet(ctx context.Context, sess employees.StaffSession, args []string) {
	if len(args) == 0 {
		fmt.Fprintln(c.out, "Usage: add-pet name=<name> species=<species> gender=<gender> [age=N] [adoptionfee=N] [breed=..] [isfixed=true] [generaldescription=..] [healthinfo=..]")
		return
	}

	var in catalog.CreateInput
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok {
			fmt.Fprintf(c.out, "Error: expected field=value, got '%s'.\n", arg)
			return
		}
		switch strings.ToLower(key) {
		case "name":
			in.Name = value
		case "species":
			in.Species = value
		case "breed":
			in.Breed = value
		case "gender":
			in.Gender = value
		case "generaldescription":
			in.GeneralDescription = value
		case "healthinfo":
			in.HealthInfo = value
		case "age":
			n, err := strconv.Atoi(value)
			if err != nil || n < 0 {
				fmt.Fprintln(c.out, "Error: age must be a non-negative integer.")
				return
			}
			in.Age = n
		case "adoptionfee":
			f, err := strconv.ParseFloat(value, 64)
			if err != nil || f < 0 {
				fmt.Fprintln(c.out, "Error: adoptionfee must be a non-negative number.")
				return
			}
			in.AdoptionFee = f
		case "isfixed":
			in.IsFixed = strings.EqualFold(value, "true") || strings.EqualFold(value, "yes")
		default:
			fmt.Fprintf(c.out, "Error: Field '%s' is not supported. Skipping.\n", key)
		}
	}

	p, err := c.pets.Create(ctx, in)
	if err != nil {
		fmt.Fprintf(c.out, "ERROR inserting Pet: %v\n", err)
		return
	}
	fmt.Fprintf(c.out, "Success! New pet %s added.\nPet ID: %d\n", p.Name, p.ID)
}

func (c *CLI) cmdUpdatePet(ctx context.Context, sess employees.StaffSession, args []string) {
	if len(args) != 3 {
		fmt.Fprintln(c.out, "Usage: update-pet <pet_id> <field> <new_value>")
		return
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		fmt.Fprintln(c.out, "Error: Pet ID must be a positive number.")
		return
	}
	field, value := strings.ToLower(args[1]), args[2]

	var in catalog.UpdateInput
	switch field {
	case "name":
		in.Name = &value
	case "breed":
		in.Breed = &value
	case "healthinfo":
		in.HealthInfo = &value
	case "generaldescription":
		in.Description = &value
	case "adoptionstatus":
		in.Status = &value
	case "age":
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 {
			fmt.Fprintln(c.out, "Error: age must be a non-negative integer.")
			return
		}
		in.Age = &n
	case "adoptionfee":
		f, err := strconv.ParseFloat(value, 64)
		if err != nil || f <= 0 {
			fmt.Fprintln(c.out, "Error: Adoption fee must be a positive number.")
			return
		}
		in.AdoptionFee = &f
	default:
		fmt.Fprintf(c.out, "Error: Field '%s' is not supported for updates.\n", field)
		return
	}

	p, err := c.pets.Update(ctx, id, in)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			fmt.Fprintf(c.out, "Pet ID %d not found.\n", id)
		} else {
			fmt.Fprintf(c.out, "ERROR updating Pet: %v\n", err)
		}
		return
	}
	fmt.Fprintf(c.out, "Pet ID %d updated successfully! New %s set.\n", p.ID, field)
}

func (c *CLI) cmdDeletePet(ctx context.Context, sess employees.StaffSession, args []string) {
	if len(args) != 1 {
		fmt.Fprintln(c.out, "Usage: delete-pet <pet_id>")
		return
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		fmt.Fprintln(c.out, "Error: Pet ID must be a positive number.")
		return
	}

	if err := c.pets.Delete(ctx, id); err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			fmt.Fprintf(c.out, "Pet ID %d not found.\n", id)
		} else {
			fmt.Fprintf(c.out, "ERROR deleting Pet: %v\n", err)
		}
		return
	}
	fmt.Fprintf(c.out, "Pet ID %d deleted.\n", id)
}

func (c *CLI) cmdSellPet(ctx context.Context, sess employees.StaffSession, args []string) {
	if len(args) != 2 {
		fmt.Fprintln(c.out, "Usage: sell-pet <pet_id> <customer_id>")
		return
	}
	petID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || petID <= 0 {
		fmt.Fprintln(c.out, "Error: Pet ID must be a positive number.")
		return
	}
	customerID := args[1]

	fmt.Fprintf(c.out, "[%s] Processing sale of Pet ID %d to Customer ID %s...\n",
		strings.ToUpper(string(sess.Role)), petID, customerID)

	o, err := c.orders.StaffSell(ctx, sess.EmployeeID, customerID, petID)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrNotFound):
			fmt.Fprintf(c.out, "Error: Pet ID %d not found.\n", petID)
		case errors.Is(err, orders.ErrPetNotForSale):
			fmt.Fprintf(c.out, "Error: Pet ID %d is not available. Cannot sell.\n", petID)
		default:
			fmt.Fprintf(c.out, "FATAL TRANSACTION ERROR: %v\n", err)
		}
		return
	}

	fmt.Fprintln(c.out, "\nTransaction Complete!")
	fmt.Fprintf(c.out, "   Order ID: %s\n", o.ID)
	fmt.Fprintf(c.out, "   Total Amount: $%.2f\n", o.Total)
	fmt.Fprintln(c.out, "   Pet status updated to 'adopted'.")
}

func (c *CLI) printPet(p catalog.Pet) {
	fmt.Fprintln(c.out, "-----------------------------------------")
	fmt.Fprintf(c.out, "ID: %d | Name: %s | Status: %s\n", p.ID, p.Name, p.AdoptionStatus)
	fmt.Fprintf(c.out, "Species: %s | Breed: %s\n", p.Species, orNA(p.Breed))
	fmt.Fprintf(c.out, "Age: %d | Gender: %s | Fixed: %t\n", p.Age, p.Gender, p.IsFixed)
	fmt.Fprintf(c.out, "Fee: $%.2f\n", p.AdoptionFee)
}

func orNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return "N/A"
	}
	return s
}

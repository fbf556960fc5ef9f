package staffcli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"pet-adoption-store/internal/domain/customers"
	"pet-adoption-store/internal/domain/employees"
	"pet-adoption-store/internal/domain/orders"
)

func (c *CLI) cmdSearchCustomers(ctx context.Context, sess employees.StaffSession, args []string) {
	if len(args) == 0 {
		fmt.Fprintln(c.out, "Usage: search-customers <name-or-email>")
		return
	}

	found, err := c.customers.Search(ctx, strings.Join(args, " "))
	if err != nil {
		fmt.Fprintf(c.out, "ERROR searching Customers: %v\n", err)
		return
	}
	if len(found) == 0 {
		fmt.Fprintln(c.out, "\nNo customers found matching the criteria.")
		return
	}

	fmt.Fprintf(c.out, "\nFound %d customer(s):\n", len(found))
	for _, cu := range found {
		fmt.Fprintln(c.out, "-----------------------------------------")
		fmt.Fprintf(c.out, "ID: %s | Name: %s\n", cu.ID, cu.Name)
		fmt.Fprintf(c.out, "Email: %s | Mobile: %s\n", cu.Email, orNA(cu.Mobile))
	}
	fmt.Fprintln(c.out, "-----------------------------------------")
}

func (c *CLI) cmdViewCustomer(ctx context.Context, sess employees.StaffSession, args []string) {
	if len(args) != 1 {
		fmt.Fprintln(c.out, "Usage: view-customer <customer_id>")
		return
	}

	cu, err := c.customers.GetByID(ctx, args[0])
	if err != nil {
		if errors.Is(err, customers.ErrNotFound) {
			fmt.Fprintf(c.out, "Customer ID %s not found.\n", args[0])
		} else {
			fmt.Fprintf(c.out, "ERROR retrieving Customer: %v\n", err)
		}
		return
	}

	fmt.Fprintf(c.out, "\nCustomer Details (ID: %s):\n", cu.ID)
	fmt.Fprintln(c.out, "=========================================")
	fmt.Fprintf(c.out, "Name: %s\n", cu.Name)
	fmt.Fprintf(c.out, "Email: %s\n", cu.Email)
	fmt.Fprintf(c.out, "Mobile: %s\n", orNA(cu.Mobile))
	fmt.Fprintf(c.out, "Address: %s\n", orNA(cu.Address))
}

func (c *CLI) cmdSearchOrders(ctx context.Context, sess employees.StaffSession, args []string) {
	if len(args) == 0 {
		fmt.Fprintln(c.out, "Usage: search-orders <field1> <value1> [<field2> <value2> ...]")
		fmt.Fprintln(c.out, "To search for multiple values (OR), use a comma: petid 1001,1002")
		return
	}
	if len(args)%2 != 0 {
		fmt.Fprintln(c.out, "Error: Must provide an even number of arguments (alternating field and value pairs).")
		return
	}

	found, err := c.orders.Search(ctx, args)
	if err != nil {
		fmt.Fprintf(c.out, "ERROR searching Orders: %v\n", err)
		return
	}
	if len(found) == 0 {
		fmt.Fprintln(c.out, "\nNo orders found matching the criteria.")
		return
	}

	fmt.Fprintf(c.out, "\nFound %d order(s):\n", len(found))
	for _, o := range found {
		fmt.Fprintln(c.out, "-----------------------------------------")
		fmt.Fprintf(c.out, "Order: %s | Date: %s | Total: $%.2f\n", o.ID, o.OrderDate.Format(time.DateOnly), o.Total)
		fmt.Fprintf(c.out, "Customer: %s | Pet: %d\n", o.CustomerID, o.PetID)
	}
	fmt.Fprintln(c.out, "-----------------------------------------")
}

func (c *CLI) cmdViewOrder(ctx context.Context, sess employees.StaffSession, args []string) {
	if len(args) != 1 {
		fmt.Fprintln(c.out, "Usage: view-order <order_id>")
		return
	}

	o, err := c.orders.GetByID(ctx, args[0])
	if err != nil {
		if errors.Is(err, orders.ErrNotFound) {
			fmt.Fprintf(c.out, "Order ID %s not found.\n", args[0])
		} else {
			fmt.Fprintf(c.out, "ERROR retrieving Order: %v\n", err)
		}
		return
	}

	fmt.Fprintf(c.out, "\nOrder Details (ID: %s):\n", o.ID)
	fmt.Fprintln(c.out, "=========================================")
	fmt.Fprintf(c.out, "Date: %s\n", o.OrderDate.Format(time.DateOnly))
	fmt.Fprintf(c.out, "Total Amount: $%.2f\n", o.Total)
	fmt.Fprintln(c.out, "--- Associated IDs ---")
	fmt.Fprintf(c.out, "Customer ID: %s\n", o.CustomerID)
	fmt.Fprintf(c.out, "Employee ID: %s\n", orNA(o.EmployeeID))
	fmt.Fprintf(c.out, "Payment ID: %s\n", orNA(o.PaymentID))
	fmt.Fprintf(c.out, "Pet ID: %d\n", o.PetID)
}

func (c *CLI) cmdAddEmployee(ctx context.Context, sess employees.StaffSession, args []string) {
	if len(args) != 5 {
		fmt.Fprintln(c.out, "Usage: add-employee <email> <name> <password> <role> <routingnumber>")
		return
	}

	e, err := c.employees.Add(ctx, employees.AddInput{
		Email:         args[0],
		Name:          args[1],
		Password:      args[2],
		Role:          args[3],
		RoutingNumber: args[4],
	})
	if err != nil {
		fmt.Fprintf(c.out, "ERROR adding Employee: %v\n", err)
		return
	}
	fmt.Fprintf(c.out, "Employee %s added successfully with id %s!\n", e.Name, e.ID)
}

func (c *CLI) cmdUpdateEmployee(ctx context.Context, sess employees.StaffSession, args []string) {
	if len(args) != 3 {
		fmt.Fprintln(c.out, "Usage: update-employee <employee_id> <field> <new_value>")
		fmt.Fprintln(c.out, "Supported fields: name, mobile, role, routingnumber, password")
		return
	}
	id, field, value := args[0], strings.ToLower(args[1]), args[2]

	var in employees.UpdateInput
	switch field {
	case "name":
		in.Name = &value
	case "mobile":
		in.Mobile = &value
	case "role":
		in.Role = &value
	case "routingnumber":
		in.RoutingNumber = &value
	case "password":
		in.Password = &value
	default:
		fmt.Fprintf(c.out, "Error: Field '%s' is not supported for updates.\n", field)
		return
	}

	e, err := c.employees.Update(ctx, id, in)
	if err != nil {
		if errors.Is(err, employees.ErrNotFound) {
			fmt.Fprintf(c.out, "Employee ID %s not found.\n", id)
		} else {
			fmt.Fprintf(c.out, "ERROR updating Employee: %v\n", err)
		}
		return
	}
	fmt.Fprintf(c.out, "Employee %s updated successfully!\n", e.ID)
}

func (c *CLI) cmdRemoveEmployee(ctx context.Context, sess employees.StaffSession, args []string) {
	if len(args) != 1 {
		fmt.Fprintln(c.out, "Usage: remove-employee <employee_id>")
		return
	}

	if err := c.employees.Remove(ctx, args[0]); err != nil {
		if errors.Is(err, employees.ErrNotFound) {
			fmt.Fprintf(c.out, "Employee ID %s not found.\n", args[0])
		} else {
			fmt.Fprintf(c.out, "ERROR removing Employee: %v\n", err)
		}
		return
	}
	fmt.Fprintf(c.out, "Employee %s removed.\n", args[0])
}

func (c *CLI) cmdSearchEmployees(ctx context.Context, sess employees.StaffSession, args []string) {
	if len(args) == 0 {
		fmt.Fprintln(c.out, "Usage: search-employees <name-or-email>")
		return
	}

	found, err := c.employees.Search(ctx, strings.Join(args, " "))
	if err != nil {
		fmt.Fprintf(c.out, "ERROR searching Employees: %v\n", err)
		return
	}
	if len(found) == 0 {
		fmt.Fprintln(c.out, "\nNo employees found matching the criteria.")
		return
	}

	fmt.Fprintf(c.out, "\nFound %d employee(s):\n", len(found))
	for _, e := range found {
		fmt.Fprintln(c.out, "-----------------------------------------")
		fmt.Fprintf(c.out, "ID: %s | Name: %s | Role: %s\n", e.ID, e.Name, e.Role)
		fmt.Fprintf(c.out, "Email: %s | Mobile: %s\n", e.Email, orNA(e.Mobile))
	}
	fmt.Fprintln(c.out, "-----------------------------------------")
}

func (c *CLI) cmdViewEmployee(ctx context.Context, sess employees.StaffSession, args []string) {
	if len(args) != 1 {
		fmt.Fprintln(c.out, "Usage: view-employee <employee_id>")
		return
	}

	e, err := c.employees.GetByID(ctx, args[0])
	if err != nil {
		if errors.Is(err, employees.ErrNotFound) {
			fmt.Fprintf(c.out, "Employee ID %s not found.\n", args[0])
		} else {
			fmt.Fprintf(c.out, "ERROR retrieving Employee: %v\n", err)
		}
		return
	}

	fmt.Fprintf(c.out, "\nEmployee Details (ID: %s):\n", e.ID)
	fmt.Fprintln(c.out, "=========================================")
	fmt.Fprintf(c.out, "Name: %s\n", e.Name)
	fmt.Fprintf(c.out, "Email: %s\n", e.Email)
	fmt.Fprintf(c.out, "Mobile: %s\n", orNA(e.Mobile))
	fmt.Fprintf(c.out, "Role: %s\n", e.Role)
	fmt.Fprintf(c.out, "Routing Number: %s\n", e.RoutingNumber)
}

// Package staffcli implementa la consola interactiva del staff de la tienda.
// Se entra con `staffcli login <email> <password>`; los comandos disponibles
// dependen del rol (los de admin solo los ve un admin).
package staffcli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"pet-adoption-store/internal/domain/catalog"
	"pet-adoption-store/internal/domain/customers"
	"pet-adoption-store/internal/domain/employees"
	"pet-adoption-store/internal/domain/orders"
)

type CLI struct {
	in  *bufio.Scanner
	out io.Writer

	pets      *catalog.Service
	customers *customers.Service
	orders    *orders.Service
	employees *employees.Service

	commands []command
}

type command struct {
	name        string
	description string
	adminOnly   bool
	run         func(ctx context.Context, sess employees.StaffSession, args []string)
}

func New(in io.Reader, out io.Writer, pets *catalog.Service, cust *customers.Service, ord *orders.Service, emp *employees.Service) *CLI {
	c := &CLI{
		in:        bufio.NewScanner(in),
		out:       out,
		pets:      pets,
		customers: cust,
		orders:    ord,
		employees: emp,
	}
	c.commands = c.buildCommands()
	return c
}

// Run hace login y, si las credenciales son válidas, arranca el loop.
func (c *CLI) Run(ctx context.Context, email, password string) error {
	sess, err := c.employees.Login(ctx, email, password)
	if err != nil {
		return err
	}

	fmt.Fprintf(c.out, "\nWelcome back, %s!\n", strings.ToUpper(string(sess.Role)))
	fmt.Fprintln(c.out, "Type 'help' for commands or 'exit'/'quit' to log out.")

	for {
		fmt.Fprintf(c.out, "staffcli(%s)> ", sess.Role)
		if !c.in.Scan() {
			break
		}

		parts := strings.Fields(c.in.Text())
		if len(parts) == 0 {
			continue
		}
		name, args := parts[0], parts[1:]

		if name == "exit" || name == "quit" {
			fmt.Fprintln(c.out, "Logging out. Goodbye!")
			break
		}
		if name == "help" {
			c.printHelp(sess.Role)
			continue
		}

		cmd, ok := c.lookup(name, sess.Role)
		if !ok {
			fmt.Fprintf(c.out, "Error: Command '%s' not recognized. Type 'help' to see available commands.\n", name)
			continue
		}
		cmd.run(ctx, sess, args)
	}

	return c.in.Err()
}

func (c *CLI) lookup(name string, role employees.Role) (command, bool) {
	for _, cmd := range c.commands {
		if cmd.name != name {
			continue
		}
		if cmd.adminOnly && role != employees.RoleAdmin {
			return command{}, false
		}
		return cmd, true
	}
	return command{}, false
}

func (c *CLI) printHelp(role employees.Role) {
	fmt.Fprintln(c.out, "\nAvailable Commands:")
	for _, cmd := range c.commands {
		if cmd.adminOnly && role != employees.RoleAdmin {
			continue
		}
		fmt.Fprintf(c.out, "  %s: %s\n", cmd.name, cmd.description)
	}
}

func (c *CLI) buildCommands() []command {
	return []command{
		{"search-pets", "Retrieves pet records matching field/value criteria.", false, c.cmdSearchPets},
		{"view-pet", "Show a single pet record.", false, c.cmdViewPet},
		{"add-pet", "Add a new pet record (field=value pairs).", false, c.cmdAddPet},
		{"update-pet", "Update one field of a pet record.", false, c.cmdUpdatePet},
		{"delete-pet", "Remove a pet record.", false, c.cmdDeletePet},
		{"sell-pet", "Process the in-store sale of a pet.", false, c.cmdSellPet},
		{"search-customers", "Find customers by name or email.", false, c.cmdSearchCustomers},
		{"view-customer", "Show a single customer record.", false, c.cmdViewCustomer},
		{"search-orders", "Retrieves orders matching field/value criteria.", false, c.cmdSearchOrders},
		{"view-order", "Show a single order.", false, c.cmdViewOrder},

		{"add-employee", "Add a new employee.", true, c.cmdAddEmployee},
		{"update-employee", "Update one field of an employee.", true, c.cmdUpdateEmployee},
		{"remove-employee", "Remove an employee.", true, c.cmdRemoveEmployee},
		{"search-employees", "Find employees by name or email.", true, c.cmdSearchEmployees},
		{"view-employee", "Show a single employee record.", true, c.cmdViewEmployee},
	}
}

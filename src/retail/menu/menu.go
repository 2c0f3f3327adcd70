// Package menu is the interactive dispatcher of the retail console: the
// logged out menu, the logged in menu and the handler behind each entry.
package menu

import (
	"context"
	"fmt"
	"io"

	"github.com/bitswalk/retail/src/common/errors"
	"github.com/bitswalk/retail/src/common/logs"
	"github.com/bitswalk/retail/src/retail/auth"
	"github.com/bitswalk/retail/src/retail/console"
	"github.com/bitswalk/retail/src/retail/output"
	"github.com/bitswalk/retail/src/retail/shop"
)

// Menu choices of the logged out menu
const (
	ChoiceCreateUser = 1
	ChoiceLogIn      = 2
	ChoiceExit       = 9
)

// ChoiceLogOut leaves the logged in menu
const ChoiceLogOut = 20

var topEntries = []string{
	"1. Create user",
	"2. Log in",
	"9. < EXIT",
}

// handler runs one logged in menu entry
type handler func(ctx context.Context, sess *auth.Session) error

type entry struct {
	choice int
	label  string
	run    handler
}

// Console wires the prompter, printer and services into the menu loop
type Console struct {
	prompt  *console.Prompter
	out     *output.Printer
	authn   *auth.Authenticator
	checker *auth.Checker
	shop    *shop.Service
	logger  *logs.Logger
	entries []entry
}

// Deps holds the collaborators of a Console
type Deps struct {
	Prompter      *console.Prompter
	Printer       *output.Printer
	Authenticator *auth.Authenticator
	Checker       *auth.Checker
	Shop          *shop.Service
	Logger        *logs.Logger
}

// New creates a Console
func New(d Deps) *Console {
	c := &Console{
		prompt:  d.Prompter,
		out:     d.Printer,
		authn:   d.Authenticator,
		checker: d.Checker,
		shop:    d.Shop,
		logger:  d.Logger,
	}

	c.entries = []entry{
		{1, fmt.Sprintf("1. View Stores within %g miles", c.shop.Config().Range), c.viewStores},
		{2, "2. View Product List", c.viewProducts},
		{3, "3. Place a Order", c.placeOrder},
		{4, fmt.Sprintf("4. View %d recent orders", c.shop.Config().RecentLimit), c.viewRecentOrders},
		{5, "5. Update Product", c.updateProduct},
		{6, fmt.Sprintf("6. View %d recent Product Updates Info", c.shop.Config().RecentLimit), c.viewRecentUpdates},
		{7, fmt.Sprintf("7. View %d Popular Items", c.shop.Config().RecentLimit), c.viewPopularProducts},
		{8, fmt.Sprintf("8. View %d Popular Customers", c.shop.Config().RecentLimit), c.viewPopularCustomers},
		{9, "9. Place Product Supply Request to Warehouse", c.placeSupplyRequest},
		{10, "10. View All Order Information", c.viewOrders},
		{11, "11. View All Product Supply Requests", c.viewSupplyRequests},
		{12, "12. View All User Information", c.viewUsers},
		{13, "13. View All Product Information", c.viewAllProducts},
		{14, "14. Update User Information", c.updateUserInformation},
		{15, "15. Update Product Information", c.updateProductInformation},
	}

	return c
}

// Run loops over the logged out menu until the exit choice, end of input
// or cancellation of ctx. Only failures to talk to the terminal are returned.
func (c *Console) Run(ctx context.Context) error {
	for ctx.Err() == nil {
		c.out.Menu("MAIN MENU", topEntries)

		choice, err := c.prompt.ReadChoice()
		if err != nil {
			return endOfSession(err)
		}

		switch choice {
		case ChoiceCreateUser:
			err = c.report(nil, c.createUser(ctx))
		case ChoiceLogIn:
			sess, lerr := c.logIn(ctx)
			if err = c.report(nil, lerr); err == nil && sess != nil {
				err = c.userMenu(ctx, sess)
			}
		case ChoiceExit:
			return nil
		default:
			c.out.PrintError(errors.ErrUnrecognizedChoice)
		}

		if err != nil {
			return endOfSession(err)
		}
	}

	return nil
}

// userMenu loops over the logged in menu until log out
func (c *Console) userMenu(ctx context.Context, sess *auth.Session) error {
	labels := make([]string, 0, len(c.entries)+2)
	for _, e := range c.entries {
		labels = append(labels, e.label)
	}
	labels = append(labels, ".........................", "20. Log out")

	for ctx.Err() == nil {
		c.out.Menu("MAIN MENU", labels)

		choice, err := c.prompt.ReadChoice()
		if err != nil {
			return err
		}

		if choice == ChoiceLogOut {
			c.logger.Info("User logged out", "session", sess.ID, "user", sess.UserID)
			return nil
		}

		run := c.lookup(choice)
		if run == nil {
			c.out.PrintError(errors.ErrUnrecognizedChoice)
			continue
		}

		if err := c.report(sess, run(ctx, sess)); err != nil {
			return err
		}
	}

	return ctx.Err()
}

func (c *Console) lookup(choice int) handler {
	for _, e := range c.entries {
		if e.choice == choice {
			return e.run
		}
	}
	return nil
}

// report is the error boundary of a handler. Messages meant for the user
// are printed, other failures are logged, and the loop goes on. Only end of
// input and cancellation are passed back up.
func (c *Console) report(sess *auth.Session, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
		return err
	}

	if errors.Is(err, errCancelled) {
		return nil
	}

	sessionID := ""
	if sess != nil {
		sessionID = sess.ID
	}

	if errors.IsUserFacing(err) {
		c.logger.Debug("Operation rejected", "session", sessionID, "error", err)
		c.out.PrintError(err)
		return nil
	}

	c.logger.Error("Operation failed", "session", sessionID, "error", err)
	return nil
}

// endOfSession maps the ways input can run out onto a clean exit
func endOfSession(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// printTotal prints the row count trailer of a view
func (c *Console) printTotal(n int, err error) error {
	if err != nil {
		return err
	}
	if !c.out.Structured() {
		c.out.PrintMessage(fmt.Sprintf("total row(s): %d", n))
	}
	return nil
}

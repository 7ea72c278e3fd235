package main

import (
	"flag"
	"strings"

	domainauth "github.com/target/hotel-client/internal/domain/auth"
	"github.com/target/hotel-client/internal/domain/model"
	"github.com/target/hotel-client/internal/domain/route"
	apperrors "github.com/target/hotel-client/internal/errors"
)

type loginOptions struct {
	Email string
	Name  string
	Role  string
}

type loginResult struct {
	domainauth.Identity
	Landing string `json:"landing"`
}

func parseLoginFlags(cc *commandContext, args []string) (domainauth.Identity, error) {
	fs := newFlagSet(cc, "login")

	var opts loginOptions
	fs.StringVar(&opts.Email, "email", "", "Email address identifying the user (required)")
	fs.StringVar(&opts.Name, "name", "", "Display name")
	fs.StringVar(&opts.Role, "type", string(domainauth.RoleGuest), "Role: guest or staff")

	if err := fs.Parse(args); err != nil {
		return domainauth.Identity{}, err
	}

	email := strings.TrimSpace(opts.Email)
	if err := model.ValidateEmail(email); err != nil {
		return domainauth.Identity{}, err
	}
	role, ok := domainauth.ParseRole(opts.Role)
	if !ok {
		return domainauth.Identity{}, apperrors.ValidationField("type", "type must be guest or staff")
	}
	return domainauth.Identity{Email: email, Name: strings.TrimSpace(opts.Name), Type: role}, nil
}

func runLogin(cc *commandContext, args []string) error {
	identity, err := parseLoginFlags(cc, args)
	if err != nil {
		return err
	}
	cc.App.Session.Login(cc.Ctx, identity)
	return cc.App.Printer.Print(loginResult{Identity: identity, Landing: route.DefaultPathFor(identity.Type)})
}

func runLogout(cc *commandContext, _ []string) error {
	cc.App.Session.Logout(cc.Ctx)
	cc.App.Printer.Message("logged out")
	return nil
}

type whoAmIResult struct {
	LoggedIn bool                 `json:"logged_in"`
	Identity *domainauth.Identity `json:"identity,omitempty"`
}

func runWhoAmI(cc *commandContext, _ []string) error {
	identity, ok := cc.App.Session.Identity()
	result := whoAmIResult{LoggedIn: ok}
	if ok {
		result.Identity = &identity
	}
	return cc.App.Printer.Print(result)
}

type navigateResult struct {
	Requested string `json:"requested"`
	Allowed   bool   `json:"allowed"`
	Redirect  string `json:"redirect,omitempty"`
	Landed    string `json:"landed"`
	View      string `json:"view,omitempty"`
}

func runNavigate(cc *commandContext, args []string) error {
	fs := newFlagSet(cc, "navigate")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return apperrors.ValidationField("path", "navigate takes exactly one view path")
	}
	path := fs.Arg(0)

	first := cc.App.Guard.Resolve(cc.Ctx, path)
	final := first
	if !first.Allowed {
		final = cc.App.Guard.Navigate(cc.Ctx, path)
	}

	if err := cc.App.Printer.Print(navigateResult{
		Requested: path,
		Allowed:   first.Allowed,
		Redirect:  first.Redirect,
		Landed:    final.Route.Path,
		View:      final.Route.Name,
	}); err != nil {
		return err
	}
	if !first.Allowed {
		return &redirectError{From: path, To: first.Redirect}
	}
	return nil
}

func newFlagSet(cc *commandContext, name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(cc.Stderr)
	return fs
}

// Package view renders the console screens from a dashboard state. Every
// function here is pure: same state and printer, same HTML.
package view

import (
	"strconv"

	"github.com/a-h/templ"
	"golang.org/x/text/message"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/nfrund/orderdesk/internal/dashboard"
	"github.com/nfrund/orderdesk/internal/domain"
	"github.com/nfrund/orderdesk/internal/messages"
)

const dateLayout = "2006-01-02 15:04:05 UTC"

// Page renders the full document for st.
func Page(st dashboard.State, p *message.Printer, lang string) templ.Component {
	if st.LoggedIn() {
		return Layout(p.Sprintf(messages.DashboardTitle), lang, Orders(st, p))
	}
	return Layout(p.Sprintf(messages.LoginTitle), lang, Login(st, p))
}

// Login renders the password form. While authenticating the form is disabled.
func Login(st dashboard.State, p *message.Printer) g.Node {
	busy := st.Status == dashboard.StatusAuthenticating
	return Div(ID("login"),
		H2(g.Text(p.Sprintf(messages.LoginTitle))),
		Form(Method("post"), Action("/login"),
			Label(For("password"), g.Text(p.Sprintf(messages.PasswordLabel))),
			Input(ID("password"), Type("password"), Name("password"),
				Placeholder(p.Sprintf(messages.PasswordLabel)),
				AutoComplete("current-password"),
			),
			Button(Type("submit"), g.If(busy, Disabled()),
				g.Iff(busy, func() g.Node { return g.Text(p.Sprintf(messages.Authenticating)) }),
				g.If(!busy, g.Text(p.Sprintf(messages.LoginButton))),
			),
		),
		errorBanner(st.Error),
	)
}

// Orders renders the orders table with a logout action.
func Orders(st dashboard.State, p *message.Printer) g.Node {
	return Div(ID("orders"),
		H2(g.Text(p.Sprintf(messages.DashboardTitle))),
		Form(Method("post"), Action("/logout"),
			Button(Type("submit"), g.Text(p.Sprintf(messages.LogoutButton))),
		),
		errorBanner(st.Error),
		g.If(len(st.Orders) == 0 && st.Error == nil, P(Class("empty"), g.Text(p.Sprintf(messages.NoOrders)))),
		Table(g.Attr("border", "1"), g.Attr("cellpadding", "5"), Style("margin-top: 20px"),
			THead(Tr(
				Th(g.Text(p.Sprintf(messages.ColumnID))),
				Th(g.Text(p.Sprintf(messages.ColumnName))),
				Th(g.Text(p.Sprintf(messages.ColumnEmail))),
				Th(g.Text(p.Sprintf(messages.ColumnLogo))),
				Th(g.Text(p.Sprintf(messages.ColumnDate))),
			)),
			TBody(g.Map(st.Orders, orderRow)),
		),
	)
}

func orderRow(o domain.Order) g.Node {
	return Tr(
		Td(g.Text(strconv.FormatInt(o.ID, 10))),
		Td(g.Text(o.Name)),
		Td(g.Text(o.Email)),
		Td(Img(Src(o.ImageURL), Alt("logo"), Width("50"))),
		Td(g.Text(formatDate(o.Date))),
	)
}

func formatDate(ts domain.Timestamp) string {
	if ts.IsZero() {
		return ""
	}
	return ts.UTC().Format(dateLayout)
}

func errorBanner(e *dashboard.ErrorState) g.Node {
	if e == nil {
		return nil
	}
	return P(Class("error"), Role("alert"), Style("color: red"), g.Text(e.Message))
}

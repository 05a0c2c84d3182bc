// Package messages holds the fixed, user-facing strings of the console and
// their translations.
package messages

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Message keys. The English text doubles as the key.
const (
	IncorrectPassword = "incorrect password"
	FetchFailed       = "error retrieving orders"
	TooManyAttempts   = "too many login attempts, try again in a minute"
	LoginTitle        = "Admin login"
	PasswordLabel     = "Password"
	LoginButton       = "Sign in"
	DashboardTitle    = "Orders dashboard"
	LogoutButton      = "Sign out"
	Authenticating    = "Signing in..."
	NoOrders          = "No orders yet."
	ColumnID          = "ID"
	ColumnName        = "Name"
	ColumnEmail       = "Email"
	ColumnLogo        = "Logo"
	ColumnDate        = "Date"
)

var catalogBuilder = newCatalog()

var supported = []language.Tag{language.English, language.French}

var matcher = language.NewMatcher(supported)

func newCatalog() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(language.English))

	entries := map[string]string{
		IncorrectPassword: "Mot de passe incorrect",
		FetchFailed:       "Erreur lors de la récupération des commandes",
		TooManyAttempts:   "Trop de tentatives de connexion, réessayez dans une minute",
		LoginTitle:        "Connexion Admin",
		PasswordLabel:     "Mot de passe",
		LoginButton:       "Se connecter",
		DashboardTitle:    "Tableau de bord des commandes",
		LogoutButton:      "Déconnexion",
		Authenticating:    "Connexion en cours...",
		NoOrders:          "Aucune commande.",
		ColumnID:          "ID",
		ColumnName:        "Nom",
		ColumnEmail:       "Email",
		ColumnLogo:        "Logo",
		ColumnDate:        "Date",
	}
	for key, fr := range entries {
		_ = b.SetString(language.English, key, key)
		_ = b.SetString(language.French, key, fr)
	}
	return b
}

// Printer returns a printer for the best supported match of locale.
// Unknown or empty locales fall back to English.
func Printer(locale string) *message.Printer {
	return message.NewPrinter(Match(locale), message.Catalog(catalogBuilder))
}

// Match resolves locale to one of the supported languages.
func Match(locale string) language.Tag {
	tag, err := language.Parse(locale)
	if err != nil {
		return language.English
	}
	_, idx, _ := matcher.Match(tag)
	return supported[idx]
}

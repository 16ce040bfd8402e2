package locale

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Message keys are the English texts.
const (
	MsgAuthServer       = "%s authentication server"
	MsgNoAdminAccess    = "You do not have permissions to access any administration functions."
	MsgUnknownSection   = "Unknown section:"
	MsgAccountsFree     = "Accounts on %s are and will stay completely free."
	MsgTechSupport      = "Please inform us of any problem or service interruption at: %s"
	MsgPageNotFound     = "The requested page does not exist or may have been removed."
	MsgInternalError    = "An internal error occurred, please try again later."
	MsgLoggedInAs       = "Logged in as %s"
	MsgLogout           = "Logout"
	MsgLogin            = "Login or create a new account"
	MsgLanguage         = "Language"
	MsgChange           = "Change"
	MsgAdministration   = "Administration"
	MsgNodeAdmin        = "Node administration"
	MsgNetworkAdmin     = "Network administration"
	MsgEdit             = "Edit"
	MsgError            = "Error"
	MsgContactSupport   = "If the problem persists, please contact"
	MsgDebugRequest     = "Request parameters"
	MsgNetworkHomepage  = "Network homepage"
	MsgLoginPlaceholder = "Please log in to use the network."
)

var french = map[string]string{
	MsgAuthServer:       "Serveur d'authentification %s",
	MsgNoAdminAccess:    "Vous n'avez pas les permissions nécessaires pour accéder aux fonctions d'administration.",
	MsgUnknownSection:   "Section inconnue :",
	MsgAccountsFree:     "Les comptes sur %s sont et resteront entièrement gratuits.",
	MsgTechSupport:      "Merci de nous signaler tout problème ou interruption de service à : %s",
	MsgPageNotFound:     "La page demandée n'existe pas ou a été retirée.",
	MsgInternalError:    "Une erreur interne est survenue, veuillez réessayer plus tard.",
	MsgLoggedInAs:       "Connecté en tant que %s",
	MsgLogout:           "Déconnexion",
	MsgLogin:            "Connexion ou création d'un nouveau compte",
	MsgLanguage:         "Langue",
	MsgChange:           "Changer",
	MsgAdministration:   "Administration",
	MsgNodeAdmin:        "Administration des points d'accès",
	MsgNetworkAdmin:     "Administration des réseaux",
	MsgEdit:             "Modifier",
	MsgError:            "Erreur",
	MsgContactSupport:   "Si le problème persiste, veuillez contacter",
	MsgDebugRequest:     "Paramètres de la requête",
	MsgNetworkHomepage:  "Site du réseau",
	MsgLoginPlaceholder: "Veuillez vous connecter pour utiliser le réseau.",
}

func init() {
	for key, msg := range french {
		if err := message.SetString(language.French, key, msg); err != nil {
			panic(err)
		}
	}
}

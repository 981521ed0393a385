package constants

// Fixed user-facing messages. Login deliberately distinguishes "unknown user"
// from "wrong password" (accepted usability trade-off); every unexpected
// failure collapses into MsgServerError so internals never leak.
const (
	MsgRegistered         = "Registration complete. Please log in with your new account."
	MsgDuplicateName      = "This user name is already taken. Please choose another one."
	MsgMissingCredentials = "A user name and password are required."
	MsgUnknownUser        = "This user name is not registered."
	MsgWrongPassword      = "The password is incorrect."
	MsgLoggedIn           = "Logged in."
	MsgForbidden          = "You do not have permission for this operation."
	MsgDiaryNotFound      = "The requested diary could not be found."
	MsgEmptyDiaryText     = "The diary has no content."
	MsgInvalidPromptKey   = "Invalid comment settings."
	MsgServerError        = "An error occurred on the server. Please try again later."
)

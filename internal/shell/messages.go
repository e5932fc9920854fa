package shell

// User-facing messages.
const (
	msgWelcome        = "Welcome to the assistant bot!"
	msgGoodbye        = "Good bye!"
	msgHello          = "How can I help you?"
	msgInvalidCommand = "Invalid command."
	msgUsageFmt       = "Invalid arguments. Usage: %s"
	msgErrorFmt       = "Error: %s"
	msgLineTooLongFmt = "Line too long: at most %d characters"

	msgContactAdded    = "Contact added."
	msgContactUpdated  = "Contact updated."
	msgContactNotFound = "Contact %s not found"
	msgContactDeleted  = "Contact %s deleted"

	msgPhoneChanged  = "Phone %s changed to %s"
	msgPhoneRemoved  = "Phone %s removed"
	msgPhoneNotFound = "Phone %s not found"
	msgPhones        = "Phones of %s: %s"
	msgNoPhones      = "%s has no phones"

	msgBirthdaySet     = "Birthday for %s set: %s"
	msgBirthdayShow    = "Birthday of %s: %s"
	msgUpcomingLineFmt = "%s - %s"
	msgNoUpcoming      = "No birthdays in the coming week"
)

package constants

// Environments
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Pub/Sub providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Mail delivery modes
const (
	// MailDeliveryDirect sends through SMTP inside the request.
	MailDeliveryDirect = "direct"
	// MailDeliveryQueue publishes a mail event consumed by the mail worker.
	MailDeliveryQueue = "queue"
	// MailDeliveryLog only logs the message. Development use.
	MailDeliveryLog = "log"
)

// Mail templates
const (
	TemplatePasswordReset = "password-reset"
)

package log

// Common field names for structured logging
const (
	FieldComponent  = "component"
	FieldRequestID  = "request_id"
	FieldClientIP   = "client_ip"
	FieldMethod     = "method"
	FieldPath       = "path"
	FieldStatusCode = "status_code"
	FieldDuration   = "duration_ms"
	FieldError      = "error"
	FieldBackend    = "backend"
	FieldPort       = "port"
	FieldSize       = "size"
	FieldEntryID    = "entry_id"
	FieldBuyer      = "buyer"
	FieldAmount     = "amount"
	FieldCapsules   = "capsules"
	FieldMilkLiters = "milk_liters"
)

// Components defines standard component names
const (
	ComponentApp     = "app"
	ComponentHTTP    = "http"
	ComponentStore   = "store"
	ComponentRender  = "render"
	ComponentPersist = "persist"
	ComponentEvents  = "events"
	ComponentWorker  = "worker"
	ComponentSheets  = "sheets"
)

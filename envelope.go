package folio

// Envelope groups lines held in the same account (e.g. a PEA or a life
// insurance plan). Envelopes are shared: many nodes may reference the same
// one, none owns it.
type Envelope struct {
	name string
	key  string
}

// NewEnvelope creates an envelope. key is the provider-side account
// identifier; it defaults to the name when empty.
func NewEnvelope(name, key string) *Envelope {
	if key == "" {
		key = name
	}
	return &Envelope{name: name, key: key}
}

// Name returns the envelope's display and registry name.
func (e *Envelope) Name() string { return e.name }

// Key returns the provider-side account identifier.
func (e *Envelope) Key() string { return e.key }

package models

// Entity is implemented by every model with a server-assigned integer identity.
type Entity interface {
	GetID() int64
}

// All lists every persisted model in dependency order; the schema is
// created from it on startup.
func All() []interface{} {
	return []interface{}{
		&Teacher{},
		&Course{},
		&Student{},
		&Enrollment{},
	}
}

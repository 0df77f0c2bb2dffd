package sqlgen

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// Registry holds the records known to an application. Each record is
// validated and its statements generated once, at registration, so
// declaration defects surface as registration errors. Registration is not
// safe for concurrent use; register everything at startup, after which all
// methods are read-only.
type Registry struct {
	order      []string
	statements map[string][]string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{statements: make(map[string][]string)}
}

// Register validates rec, generates its statements and caches them under
// the resolved table name. Registering two records that resolve to the
// same table is an error.
func (r *Registry) Register(rec *Record) error {
	e, err := NewExtractor(rec)
	if err != nil {
		return err
	}
	if _, ok := r.statements[e.TableName()]; ok {
		return fmt.Errorf("table %q is already registered", e.TableName())
	}
	stmts, err := e.TableStatements()
	if err != nil {
		return err
	}
	r.order = append(r.order, e.TableName())
	r.statements[e.TableName()] = stmts
	return nil
}

// RegisterAll registers every record, collecting failures instead of
// stopping at the first one. Records that register cleanly stay
// registered even when others fail.
func (r *Registry) RegisterAll(recs []*Record) error {
	var result *multierror.Error
	for _, rec := range recs {
		if err := r.Register(rec); err != nil {
			result = multierror.Append(result, err)
		}
	}
	return result.ErrorOrNil()
}

// Tables returns the registered table names in registration order.
func (r *Registry) Tables() []string {
	return append([]string(nil), r.order...)
}

// Statements returns the cached statements for one table.
func (r *Registry) Statements(table string) ([]string, bool) {
	stmts, ok := r.statements[table]
	return stmts, ok
}

// AllStatements returns the statements for every registered table in
// registration order. Registering parent records before their children
// yields a list that can be executed as-is.
func (r *Registry) AllStatements() []string {
	var all []string
	for _, table := range r.order {
		all = append(all, r.statements[table]...)
	}
	return all
}

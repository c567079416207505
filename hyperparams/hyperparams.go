// package hyperparams implements a declarative validation framework
// for algorithm hyperparameters. Descriptors bind a hyperparameter
// name to a constraint (range, enum, custom rule); a Set holds the
// declared descriptors plus the caller's values and validates on
// every write and again when the set is serialized for a request.
// Values are kept as strings throughout since that is the wire
// format the training APIs accept.
package hyperparams

import (
	"sort"
)

// Descriptor declares a single hyperparameter.
type Descriptor struct {
	Name       string
	Required   bool
	Default    string
	Constraint Constraint
}

// Set is a validated collection of hyperparameter values.
type Set struct {
	descriptors     map[string]Descriptor
	values          map[string]string
	allowUndeclared bool
}

// NewSet returns a strict set: only declared hyperparameters may be
// written. Descriptor defaults are applied immediately.
func NewSet(descriptors ...Descriptor) *Set {
	return newSet(false, descriptors)
}

// NewOpenSet returns a permissive set that accepts undeclared
// hyperparameters unvalidated. Framework estimators use this, since
// script-mode hyperparameters are defined by user code.
func NewOpenSet(descriptors ...Descriptor) *Set {
	return newSet(true, descriptors)
}

func newSet(allowUndeclared bool, descriptors []Descriptor) *Set {
	s := &Set{
		descriptors:     make(map[string]Descriptor, len(descriptors)),
		values:          make(map[string]string),
		allowUndeclared: allowUndeclared,
	}
	for _, d := range descriptors {
		s.descriptors[d.Name] = d
		if d.Default != "" {
			s.values[d.Name] = d.Default
		}
	}
	return s
}

// Put writes a value, validating it against the descriptor's
// constraint. Writing an undeclared name fails on strict sets.
func (s *Set) Put(name, value string) error {
	d, declared := s.descriptors[name]
	if !declared {
		if !s.allowUndeclared {
			return NewUnknownHyperparameterError(name, s.Names())
		}
		s.values[name] = value
		return nil
	}

	if d.Constraint != nil {
		if err := d.Constraint.Validate(name, value); err != nil {
			return err
		}
	}
	s.values[name] = value
	return nil
}

// PutAll writes every entry of values, stopping on the first
// validation failure.
func (s *Set) PutAll(values map[string]string) error {
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if err := s.Put(name, values[name]); err != nil {
			return err
		}
	}
	return nil
}

// Get returns the current value for name.
func (s *Set) Get(name string) (string, bool) {
	v, ok := s.values[name]
	return v, ok
}

// Delete removes a value. Required descriptors will fail Validate
// again until the value is rewritten.
func (s *Set) Delete(name string) {
	delete(s.values, name)
}

// Len returns the number of values currently held.
func (s *Set) Len() int {
	return len(s.values)
}

// Names returns the declared hyperparameter names, sorted.
func (s *Set) Names() []string {
	names := make([]string, 0, len(s.descriptors))
	for name := range s.descriptors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Validate checks that every required descriptor has a value and
// revalidates all held values against their constraints.
func (s *Set) Validate() error {
	for _, name := range s.Names() {
		d := s.descriptors[name]
		value, ok := s.values[name]
		if !ok {
			if d.Required {
				return NewMissingRequiredError(name)
			}
			continue
		}
		if d.Constraint != nil {
			if err := d.Constraint.Validate(name, value); err != nil {
				return err
			}
		}
	}
	return nil
}

// Wire validates the set and returns a copy of the values in the
// map[string]string shape the training APIs accept.
func (s *Set) Wire() (map[string]string, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	out := make(map[string]string, len(s.values))
	for name, value := range s.values {
		out[name] = value
	}
	return out, nil
}

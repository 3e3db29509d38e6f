package store

import (
	"encoding/csv"
	"io"
	"os"

	"leadgate/internal/cache"
	"leadgate/internal/model"
)

// Lookup resolves phone numbers to classified roles by scanning a
// previously written classified-leads file. Linear scan: the store is
// small and the lookup low-frequency.
type Lookup struct {
	path  string
	cache cache.Cache // optional memoization, may be nil
}

// NewLookup creates a lookup over the classified output at path
func NewLookup(path string) *Lookup {
	return &Lookup{path: path}
}

// WithCache attaches a memoization cache for repeated lookups
func (l *Lookup) WithCache(c cache.Cache) *Lookup {
	l.cache = c
	return l
}

// RoleByPhone returns the role recorded for an exact phone match, or the
// fallback role when the phone is absent, the store is missing, or the
// store is unreadable. It never fails.
func (l *Lookup) RoleByPhone(phone string) string {
	if phone == "" {
		return model.FallbackRole
	}

	key := cache.Key("phone-role", l.path, phone)
	if l.cache != nil {
		if cached, found := l.cache.Get(key); found {
			return string(cached)
		}
	}

	role := l.scan(phone)

	if l.cache != nil {
		_ = l.cache.Set(key, []byte(role), 0)
	}

	return role
}

// scan walks the classified CSV looking for an exact phone match
func (l *Lookup) scan(phone string) string {
	f, err := os.Open(l.path)
	if err != nil {
		return model.FallbackRole
	}
	defer func() { _ = f.Close() }()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return model.FallbackRole
	}

	phoneIdx, roleIdx := -1, -1
	for i, col := range header {
		switch col {
		case "Phone":
			phoneIdx = i
		case "Assigned_Role":
			roleIdx = i
		}
	}
	if phoneIdx < 0 || roleIdx < 0 {
		return model.FallbackRole
	}

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return model.FallbackRole
		}

		if field(record, phoneIdx) == phone {
			if role := field(record, roleIdx); role != "" {
				return role
			}
			return model.FallbackRole
		}
	}

	return model.FallbackRole
}

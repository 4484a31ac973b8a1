package domain

import "strconv"

// EntityID names one logical record across the two places it can live: the
// durable store (opaque store-native id) and the in-process session cache
// (locally minted numeric id). A record that started in the cache and later
// reached the store legitimately carries both values; callers compare ids
// through Equal, never through raw fields.
type EntityID struct {
	durable string
	local   int64
}

func DurableID(id string) EntityID { return EntityID{durable: id} }

func LocalID(n int64) EntityID { return EntityID{local: n} }

// ParseID accepts an id in either representation: all-digit strings are
// session-local ids, anything else is a durable-store id.
func ParseID(s string) EntityID {
	if s == "" {
		return EntityID{}
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil && n > 0 {
		return EntityID{local: n}
	}
	return EntityID{durable: s}
}

// String returns the normalized form: the durable id when the record has
// one, the decimal local id otherwise.
func (id EntityID) String() string {
	if id.durable != "" {
		return id.durable
	}
	if id.local != 0 {
		return strconv.FormatInt(id.local, 10)
	}
	return ""
}

func (id EntityID) IsZero() bool { return id.durable == "" && id.local == 0 }

// IsLocal reports whether the record has never been assigned a durable id.
func (id EntityID) IsLocal() bool { return id.durable == "" && id.local != 0 }

// Durable returns the store-native id, empty while the record has not
// reached the store.
func (id EntityID) Durable() string { return id.durable }

// Equal matches by either representation, so a lookup id parsed from a
// request resolves no matter which store materialized the record.
func (id EntityID) Equal(other EntityID) bool {
	if id.durable != "" && id.durable == other.durable {
		return true
	}
	if id.local != 0 && id.local == other.local {
		return true
	}
	return false
}

// WithDurable links a durable id onto a cache-minted one, keeping the local
// value so references handed out before the store write still resolve.
func (id EntityID) WithDurable(durable string) EntityID {
	id.durable = durable
	return id
}

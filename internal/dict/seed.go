package dict

// Default category names seeded into every new session.
const (
	CategoryUrgency   = "urgency_marketing"
	CategoryExclusive = "exclusive_marketing"
)

// defaultEntries are the built-in marketing keyword dictionaries.
func defaultEntries() []Entry {
	return []Entry{
		{
			Category: CategoryUrgency,
			Keywords: []string{
				"limited", "limited time", "limited run", "limited edition", "order now",
				"last chance", "hurry", "while supplies last", "before they're gone",
				"selling out", "selling fast", "act now", "don't wait", "today only",
				"expires soon", "final hours", "almost gone",
			},
		},
		{
			Category: CategoryExclusive,
			Keywords: []string{
				"exclusive", "exclusively", "exclusive offer", "exclusive deal",
				"members only", "vip", "special access", "invitation only",
				"premium", "privileged", "limited access", "select customers",
				"insider", "private sale", "early access",
			},
		},
	}
}

// NewSeededStore creates a store preloaded with the default dictionaries.
func NewSeededStore() *Store {
	s := NewStore()
	// defaultEntries is well-formed, ReplaceAll cannot fail on it
	_ = s.ReplaceAll(defaultEntries())
	return s
}

package object

// hashEntry is one chained bucket node: a key, its bound value, and the
// next entry in the same bucket (separate chaining).
type hashEntry struct {
	key   string
	value Object
	next  *hashEntry
}

// hashTable is a hand-rolled string-keyed hash table backing Environment,
// per spec.md §4.7 ("The backing mapping is a hash table keyed by the
// identifier string, with the standard h = 31*h + byte accumulator,
// separate chaining for collisions, automatic rehash when load factor
// reaches 0.75"). Grounded on
// original_source/monkeypreter/src/evaluator/hash_map.c.
type hashTable struct {
	buckets []*hashEntry
	size    int
}

const initialBucketCount = 8

func newHashTable() *hashTable {
	return &hashTable{buckets: make([]*hashEntry, initialBucketCount)}
}

// hashString implements the h = 31*h + byte accumulator named by spec.md
// §4.7, matching hashString() in the original C source byte for byte.
func hashString(key string) uint32 {
	var h uint32
	for i := 0; i < len(key); i++ {
		h = 31*h + uint32(key[i])
	}
	return h
}

func (ht *hashTable) indexFor(key string) int {
	return int(hashString(key) % uint32(len(ht.buckets)))
}

func (ht *hashTable) get(key string) (Object, bool) {
	for e := ht.buckets[ht.indexFor(key)]; e != nil; e = e.next {
		if e.key == key {
			return e.value, true
		}
	}
	return nil, false
}

// set binds key to value, rebinding in place if key is already present in
// this table (rebinding never triggers a rehash), and rehashing once the
// load factor would reach or exceed 0.75 after a new insertion.
func (ht *hashTable) set(key string, value Object) {
	idx := ht.indexFor(key)
	for e := ht.buckets[idx]; e != nil; e = e.next {
		if e.key == key {
			e.value = value
			return
		}
	}

	ht.buckets[idx] = &hashEntry{key: key, value: value, next: ht.buckets[idx]}
	ht.size++

	if float64(ht.size)/float64(len(ht.buckets)) >= 0.75 {
		ht.rehash()
	}
}

// rehash doubles the bucket count and reinserts every entry, matching
// rehash() in the original C source (new capacity = 2x old).
func (ht *hashTable) rehash() {
	old := ht.buckets
	ht.buckets = make([]*hashEntry, len(old)*2)
	for _, head := range old {
		for e := head; e != nil; {
			next := e.next
			idx := ht.indexFor(e.key)
			e.next = ht.buckets[idx]
			ht.buckets[idx] = e
			e = next
		}
	}
}

// each calls fn with the value of every entry currently stored, in bucket
// order. Used by the collector to mark every binding in a table.
func (ht *hashTable) each(fn func(value Object)) {
	for _, head := range ht.buckets {
		for e := head; e != nil; e = e.next {
			fn(e.value)
		}
	}
}

// Environment is the name -> value chain of spec.md §4.7: a hash-table
// mapping plus an optional outer environment. Lookup walks innermost to
// outermost; the global environment has Outer == nil.
type Environment struct {
	store *hashTable
	outer *Environment
}

// NewEnvironment creates an empty top-level environment with no outer.
func NewEnvironment() *Environment {
	return &Environment{store: newHashTable()}
}

// NewEnclosedEnvironment creates an empty environment whose outer is the
// given environment, as evaluated on every function call (spec.md §4.4
// "Call": "create a new environment enclosing the function's captured
// environment").
func NewEnclosedEnvironment(outer *Environment) *Environment {
	env := NewEnvironment()
	env.outer = outer
	return env
}

// Get returns the value bound to name, searching this environment first
// and then each outer environment in turn. ok is false if name is unbound
// anywhere in the chain, at which point the evaluator falls through to the
// built-in table (spec.md §4.4 "Identifier"). This is the (Object, bool)
// idiom used throughout the pack's Monkey-family evaluators rather than a
// literal null-singleton miss sentinel — see DESIGN.md Open Question 1.
func (e *Environment) Get(name string) (Object, bool) {
	obj, ok := e.store.get(name)
	if !ok && e.outer != nil {
		return e.outer.Get(name)
	}
	return obj, ok
}

// Set binds name to val in this environment only, overwriting any prior
// binding at this level. It never touches an outer environment, so
// shadowing falls out naturally: Get only reaches the outer when this
// level has no entry for name at all.
func (e *Environment) Set(name string, val Object) Object {
	e.store.set(name, val)
	return val
}

// Outer returns the enclosing environment, or nil for the top-level
// environment. Used by the collector to walk the full chain when marking.
func (e *Environment) Outer() *Environment {
	return e.outer
}

// Each calls fn once per binding held directly in this environment (not
// its outer chain). Used by the collector's mark phase.
func (e *Environment) Each(fn func(value Object)) {
	e.store.each(fn)
}

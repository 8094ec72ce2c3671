package models

// DocumentInfo describes one SRFI as listed by the info source.
type DocumentInfo struct {
	Title       string `json:"title"`
	OfficialURL string `json:"official_html_url"`
}

// InfoMap maps SRFI identifiers to their DocumentInfo while keeping the
// insertion order of the source JSON object.
type InfoMap struct {
	keys   []string
	values map[string]DocumentInfo
}

// NewInfoMap creates an empty InfoMap.
func NewInfoMap() *InfoMap {
	return &InfoMap{values: make(map[string]DocumentInfo)}
}

// Set stores info under id. A repeated id keeps its first position and
// takes the new value.
func (m *InfoMap) Set(id string, info DocumentInfo) {
	if _, ok := m.values[id]; !ok {
		m.keys = append(m.keys, id)
	}
	m.values[id] = info
}

// Get returns the info stored under id.
func (m *InfoMap) Get(id string) (DocumentInfo, bool) {
	if m == nil {
		return DocumentInfo{}, false
	}
	info, ok := m.values[id]
	return info, ok
}

// Keys returns the identifiers in insertion order.
func (m *InfoMap) Keys() []string {
	if m == nil {
		return nil
	}
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}

// Len returns the number of identifiers.
func (m *InfoMap) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// SymbolMap maps SRFI identifiers to the symbols they define.
// A nil slice stored under a key is treated the same as a missing key.
type SymbolMap map[string][]string

// Lookup returns the symbols for id and whether a list is known.
func (m SymbolMap) Lookup(id string) ([]string, bool) {
	symbols, ok := m[id]
	if !ok || symbols == nil {
		return nil, false
	}
	return symbols, true
}

// DisplayRecord is one joined, renderable SRFI entry.
type DisplayRecord struct {
	ID          string   `json:"number"`
	Title       string   `json:"title"`
	OfficialURL string   `json:"official_html_url"`
	Symbols     []string `json:"symbols"` // nil when no symbol list is known
}

// HasSymbols reports whether a symbol list is known for the record,
// including an empty one.
func (r DisplayRecord) HasSymbols() bool {
	return r.Symbols != nil
}

// Definition types.
const DefinitionProcedure = "procedure"

// SymbolDefinition is one place a symbol is defined.
type SymbolDefinition struct {
	DefinedIn DefinitionSource `json:"defined_in"`
	Type      string           `json:"type"`
}

// DefinitionSource names the document defining a symbol.
type DefinitionSource struct {
	Type   string `json:"type"`
	Number string `json:"number"`
}

// SymbolAPIResponse is returned by the symbol lookup endpoint.
type SymbolAPIResponse struct {
	Name        string             `json:"name"`
	Definitions []SymbolDefinition `json:"definitions"`
}

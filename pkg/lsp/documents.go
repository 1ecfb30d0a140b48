package lsp

import (
	"net/url"
	"path"
	"strings"
	"sync"
)

// Document is one text document the client has told us about. Each document
// is a single block; its URI is the block id.
type Document struct {
	URI        DocumentURI
	LanguageID string
	Version    int32
	Content    string
	// Open is false after didClose. Closed documents are kept so an edit in
	// flight can still re-open them.
	Open bool
}

// DocumentManager handles document operations
type DocumentManager struct {
	store *sync.Map // map[DocumentURI]*Document
}

func NewDocumentManager() *DocumentManager {
	return &DocumentManager{
		store: &sync.Map{},
	}
}

// Get returns a copy of the document.
func (m *DocumentManager) Get(uri DocumentURI) (Document, bool) {
	content, ok := m.store.Load(normalizeURI(uri))
	if !ok {
		return Document{}, false
	}
	return *content.(*Document), true
}

func (m *DocumentManager) Store(doc *Document) {
	doc.URI = normalizeURI(doc.URI)
	m.store.Store(doc.URI, doc)
}

// Update replaces the content of a known document, keeping everything else.
func (m *DocumentManager) Update(uri DocumentURI, content string, version int32) bool {
	current, ok := m.Get(uri)
	if !ok {
		return false
	}
	current.Content = content
	if version > 0 {
		current.Version = version
	}
	m.Store(&current)
	return true
}

func (m *DocumentManager) SetOpen(uri DocumentURI, open bool) bool {
	current, ok := m.Get(uri)
	if !ok {
		return false
	}
	current.Open = open
	m.Store(&current)
	return true
}

func (m *DocumentManager) Delete(uri DocumentURI) {
	m.store.Delete(normalizeURI(uri))
}

func normalizeURI(uri DocumentURI) DocumentURI {
	s := string(uri)
	if strings.HasPrefix(s, "/") {
		return DocumentURI("file://" + s)
	}
	return uri
}

// documentPath is the slash-separated path of uri without its leading
// slash, the form glob patterns are matched against.
func documentPath(uri DocumentURI) string {
	p := string(uri)
	if u, err := url.Parse(p); err == nil && u.Scheme != "" {
		p = u.Path
		if p == "" {
			p = u.Opaque
		}
	}
	return strings.TrimPrefix(path.Clean("/"+p), "/")
}

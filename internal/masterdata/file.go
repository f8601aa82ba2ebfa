package masterdata

import "sync"

// File is a master data document bound to its path. It is safe for
// concurrent use.
type File struct {
	path string

	mu  sync.RWMutex
	doc Document
}

// Open loads the document at path, creating it with defaults if missing.
func Open(path string) (*File, error) {
	doc, err := Load(path)
	if err != nil {
		return nil, err
	}
	return &File{path: path, doc: doc}, nil
}

// Path returns the file location.
func (f *File) Path() string {
	return f.path
}

// Get returns the current document.
func (f *File) Get() Document {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.doc
}

// Set normalizes doc, writes it to disk and makes it current.
func (f *File) Set(doc Document) (Document, error) {
	doc = doc.Normalize()

	f.mu.Lock()
	defer f.mu.Unlock()
	if err := Save(f.path, doc); err != nil {
		return Document{}, err
	}
	f.doc = doc
	return doc, nil
}

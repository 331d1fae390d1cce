package content

import (
	"encoding/json"

	"github.com/bfarth20/malexanderportfolio/internal/notion"
)

// FileRef is a reference to a file attached to a record. It is one of
// HostedFile, ExternalFile or UnknownFile.
type FileRef interface {
	isFileRef()
}

// HostedFile is an upload hosted by the content store. URL is empty when the
// store omitted it.
type HostedFile struct{ URL string }

// ExternalFile is a link to a file hosted elsewhere.
type ExternalFile struct{ URL string }

// UnknownFile is any file shape this package does not understand.
type UnknownFile struct{ Type string }

func (HostedFile) isFileRef()   {}
func (ExternalFile) isFileRef() {}
func (UnknownFile) isFileRef()  {}

// ResolveFileURL maps a reference to a direct URL.
func ResolveFileURL(ref FileRef) (string, bool) {
	switch f := ref.(type) {
	case HostedFile:
		return f.URL, f.URL != ""
	case ExternalFile:
		return f.URL, f.URL != ""
	default:
		return "", false
	}
}

// ResolveFileURLs resolves refs element-wise, dropping unresolvable entries.
// The result is never nil.
func ResolveFileURLs(refs []FileRef) []string {
	urls := make([]string, 0, len(refs))
	for _, ref := range refs {
		if u, ok := ResolveFileURL(ref); ok {
			urls = append(urls, u)
		}
	}
	return urls
}

// DecodeFileRef converts one raw files entry. Entries that do not decode
// become UnknownFile.
func DecodeFileRef(raw json.RawMessage) FileRef {
	var obj notion.FileObject
	if err := json.Unmarshal(raw, &obj); err != nil {
		return UnknownFile{}
	}
	switch obj.Type {
	case "file":
		return HostedFile{URL: fileURL(obj.File)}
	case "external":
		return ExternalFile{URL: fileURL(obj.External)}
	default:
		return UnknownFile{Type: obj.Type}
	}
}

func fileURL(f *notion.FileURL) string {
	if f == nil || f.URL == nil {
		return ""
	}
	return *f.URL
}

func fileRefs(page notion.Page, name string) []FileRef {
	prop, ok := page.Property(name)
	if !ok {
		return nil
	}
	refs := make([]FileRef, 0, len(prop.Files))
	for _, raw := range prop.Files {
		refs = append(refs, DecodeFileRef(raw))
	}
	return refs
}

package filesystem

// RawFile - a file with a string content.
// Description is used in error messages, for example "annotation", "manifest", ...
type RawFile struct {
	desc    string
	path    string
	Content string
}

func NewRawFile(path, content string) *RawFile {
	return &RawFile{path: path, Content: content}
}

func (f *RawFile) Path() string {
	return f.path
}

func (f *RawFile) Description() string {
	return f.desc
}

func (f *RawFile) SetDescription(v string) *RawFile {
	f.desc = v
	return f
}

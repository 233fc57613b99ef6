package docs

// CopiedFile pairs a markdown file's source path (relative to the base
// directory) with the destination it was copied to under the docs directory.
// Category resolution uses the source path, which still carries the
// numbered workflow directory; the destination is flattened.
type CopiedFile struct {
	Source string `json:"source"`
	Dest   string `json:"dest"`
}

// FileMap holds the copied files grouped by destination section. It is built
// once per run and consumed by the badge, cross-reference, index, and link
// validation stages.
type FileMap struct {
	Workflows []CopiedFile
	Examples  []CopiedFile
	Rules     []CopiedFile
	Main      []CopiedFile
}

// All returns every copied file across all sections.
func (fm *FileMap) All() []CopiedFile {
	out := make([]CopiedFile, 0, len(fm.Workflows)+len(fm.Examples)+len(fm.Rules)+len(fm.Main))
	out = append(out, fm.Workflows...)
	out = append(out, fm.Examples...)
	out = append(out, fm.Rules...)
	out = append(out, fm.Main...)
	return out
}

// WorkflowLink is an entry in the map of known workflow files, used when
// inserting cross-references. Stem is the file name without extension; Path
// is the link target relative to the docs root.
type WorkflowLink struct {
	Stem string
	Path string
}

package bundle

import (
	stderrors "errors"
	"io/fs"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/arthur-debert/measurefs/pkg/errors"
	"github.com/arthur-debert/measurefs/pkg/filesystem"
	"github.com/arthur-debert/measurefs/pkg/paths"
	"github.com/arthur-debert/measurefs/pkg/types"
	"github.com/beevik/etree"
)

// ManifestName is the descriptor file at the root of a measure bundle.
const ManifestName = "measure.xml"

// Manifest is the subset of measure.xml that describes the bundle.
type Manifest struct {
	SchemaVersion string         `json:"schema_version,omitempty" yaml:"schema_version,omitempty" toml:"schema_version,omitempty"`
	Name          string         `json:"name" yaml:"name" toml:"name"`
	UID           string         `json:"uid,omitempty" yaml:"uid,omitempty" toml:"uid,omitempty"`
	VersionID     string         `json:"version_id,omitempty" yaml:"version_id,omitempty" toml:"version_id,omitempty"`
	DisplayName   string         `json:"display_name,omitempty" yaml:"display_name,omitempty" toml:"display_name,omitempty"`
	ClassName     string         `json:"class_name,omitempty" yaml:"class_name,omitempty" toml:"class_name,omitempty"`
	Description   string         `json:"description,omitempty" yaml:"description,omitempty" toml:"description,omitempty"`
	Files         []ManifestFile `json:"files" yaml:"files" toml:"files"`
}

// ManifestFile is one <file> entry.
type ManifestFile struct {
	Filename  string `json:"filename" yaml:"filename" toml:"filename"`
	Filetype  string `json:"filetype,omitempty" yaml:"filetype,omitempty" toml:"filetype,omitempty"`
	UsageType string `json:"usage_type,omitempty" yaml:"usage_type,omitempty" toml:"usage_type,omitempty"`
	Checksum  string `json:"checksum,omitempty" yaml:"checksum,omitempty" toml:"checksum,omitempty"`
}

// usage type -> folder holding files of that type
var usageFolders = map[string]string{
	"resource": "resources",
	"test":     "tests",
	"doc":      "docs",
}

// Path returns the relative entry a manifest file lives at. Scripts,
// readmes and licenses sit at the bundle root.
func (f ManifestFile) Path() string {
	name := paths.Clean(f.Filename)
	if dir, ok := usageFolders[strings.ToLower(f.UsageType)]; ok {
		return path.Join(dir, name)
	}
	return name
}

// ReadManifest parses root/measure.xml.
func ReadManifest(fsys types.FS, root string) (*Manifest, error) {
	file := filepath.Join(root, ManifestName)
	data, err := fsys.ReadFile(file)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrapf(err, errors.ErrNotFound, "no %s in %q", ManifestName, root)
		}
		return nil, errors.Wrapf(err, errors.ErrManifestParse, "cannot read %q", file)
	}
	return ParseManifest(data)
}

// ParseManifest decodes the bytes of a measure.xml document.
func ParseManifest(data []byte) (*Manifest, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, errors.Wrap(err, errors.ErrManifestParse, "invalid measure.xml")
	}
	root := doc.SelectElement("measure")
	if root == nil {
		return nil, errors.New(errors.ErrManifestParse, "measure.xml has no <measure> element")
	}

	m := &Manifest{
		SchemaVersion: childText(root, "schema_version"),
		Name:          childText(root, "name"),
		UID:           childText(root, "uid"),
		VersionID:     childText(root, "version_id"),
		DisplayName:   childText(root, "display_name"),
		ClassName:     childText(root, "class_name"),
		Description:   childText(root, "description"),
		Files:         []ManifestFile{},
	}
	if m.Name == "" {
		return nil, errors.New(errors.ErrManifestParse, "measure.xml has no <name>")
	}

	for _, el := range root.FindElements("./files/file") {
		f := ManifestFile{
			Filename:  childText(el, "filename"),
			Filetype:  childText(el, "filetype"),
			UsageType: childText(el, "usage_type"),
			Checksum:  childText(el, "checksum"),
		}
		if f.Filename == "" {
			continue
		}
		m.Files = append(m.Files, f)
	}
	return m, nil
}

func childText(el *etree.Element, tag string) string {
	child := el.SelectElement(tag)
	if child == nil {
		return ""
	}
	return strings.TrimSpace(child.Text())
}

// CheckManifest returns the relative entries listed in m that are not
// regular files under root, sorted.
func CheckManifest(fsys types.FS, root string, m *Manifest) []string {
	var missing []string
	for _, f := range m.Files {
		rel := f.Path()
		if !filesystem.IsRegular(fsys, paths.Join(root, rel)) {
			missing = append(missing, rel)
		}
	}
	sort.Strings(missing)
	return missing
}

package enumjen

// DefaultExtension is the file extension given to generated enum files.
const DefaultExtension = ".ts"

// EnumJenny renders each [EnumSpec] into its own file, named after the enum,
// holding a single declaration and a default export.
type EnumJenny struct {
	// Extension is appended to the enum name to form the file name.
	// DefaultExtension is used if empty.
	Extension string
}

var _ OneToOne[EnumSpec] = EnumJenny{}

func (j EnumJenny) JennyName() string {
	return "EnumJenny"
}

func (j EnumJenny) Generate(spec EnumSpec) (File, error) {
	return File{
		RelativePath: spec.Name + extOrDefault(j.Extension),
		Data:         []byte(RenderEnum(spec)),
	}, nil
}

// BundleJenny renders all of its [EnumSpec] inputs into one file with a
// combined export statement.
type BundleJenny struct {
	// FileName is the output file name without extension.
	FileName string

	// Extension is appended to FileName. DefaultExtension is used if empty.
	Extension string
}

var _ ManyToOne[EnumSpec] = BundleJenny{}

func (j BundleJenny) JennyName() string {
	return "BundleJenny"
}

func (j BundleJenny) Generate(specs []EnumSpec) (File, error) {
	return File{
		RelativePath: j.FileName + extOrDefault(j.Extension),
		Data:         []byte(RenderBundle(specs)),
	}, nil
}

func extOrDefault(ext string) string {
	if ext == "" {
		return DefaultExtension
	}
	return ext
}

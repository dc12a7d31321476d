package enumjen

// A Jenny is a code generator that takes one type of Input and produces zero,
// one or many [File]s.
//
// Jenny itself only requires a name. A usable Jenny also implements exactly
// one of [OneToOne], [ManyToOne] or [ManyToMany], according to how many
// Inputs it consumes and how many Files it returns.
type Jenny[Input any] interface {
	NamedJenny
}

// NamedJenny is the non-generic part of a Jenny, used to record which jennies
// produced a File.
type NamedJenny interface {
	// JennyName returns the name of the generator.
	JennyName() string
}

// OneToOne is a Jenny called once per Input, producing one File.
type OneToOne[Input any] interface {
	Jenny[Input]

	// Generate takes an Input and generates one File. A zero File indicates
	// the jenny had nothing to do for the Input.
	Generate(Input) (File, error)
}

// ManyToOne is a Jenny called once with every Input, producing one File.
type ManyToOne[Input any] interface {
	Jenny[Input]

	// Generate takes all Inputs and generates one File. A zero File
	// indicates the jenny had nothing to do.
	Generate([]Input) (File, error)
}

// ManyToMany is a Jenny called once with every Input, producing any number of
// Files.
type ManyToMany[Input any] interface {
	Jenny[Input]

	// Generate takes all Inputs and generates many Files. A nil, nil return
	// indicates the jenny had nothing to do.
	Generate([]Input) (Files, error)
}

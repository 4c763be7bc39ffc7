//go:generate go run github.com/dmarkham/enumer -type=ShellType -trimprefix=ShellType -transform=kebab
//go:generate go run github.com/dmarkham/enumer -type=NumType -trimprefix=NumType -transform=lower
package calc

// ExportSpec describes how a result is emitted as a shell assignment.
// An empty VarName means the result is printed as is.
type ExportSpec struct {
	VarName   string
	Export    bool
	ShellType ShellType
}

// CmdSpec is what every subcommand collects from its flags before running.
type CmdSpec struct {
	Range        string
	Preset       string
	ConfigPath   string
	Type         NumType
	InputFormat  []string
	OutputFormat []string
	Target       string
	Export       ExportSpec
}

type ShellType int

const (
	ShellTypeAuto ShellType = iota
	ShellTypeSh
	ShellTypePowershell
	ShellTypeCmd
)

// NumType selects the payload type operands are parsed into.
type NumType int

const (
	NumTypeInt NumType = iota
	NumTypeInt64
	NumTypeUint
	NumTypeFloat64
)

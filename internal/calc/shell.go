package calc

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/shirou/gopsutil/v4/process"

	"github.com/vipcxj/rangetype/internal/log"
)

// buildShellLiteral quotes s for POSIX shells: single quotes throughout, with
// embedded single quotes written as '\''.
func buildShellLiteral(s string) string {
	if s == "" {
		return "''"
	}
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

func buildPowershellLiteral(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

func buildCmdLiteral(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `\"`) + `"`
}

// exportEnvVar renders one assignment of val to varName. With export set the
// variable outlives the current session: exported for sh, stored for the
// user on Windows shells.
func exportEnvVar(shellType ShellType, varName string, val string, export bool) (string, error) {
	switch shellType {
	case ShellTypeSh:
		if export {
			return fmt.Sprintf("export %s=%s", varName, buildShellLiteral(val)), nil
		}
		return fmt.Sprintf("%s=%s", varName, buildShellLiteral(val)), nil
	case ShellTypePowershell:
		if export {
			return fmt.Sprintf("[System.Environment]::SetEnvironmentVariable(%s,%s,'User')",
				buildPowershellLiteral(varName), buildPowershellLiteral(val)), nil
		}
		return fmt.Sprintf("$Env:%s = %s", varName, buildPowershellLiteral(val)), nil
	case ShellTypeCmd:
		if export {
			return fmt.Sprintf("setx %s %s", varName, buildCmdLiteral(val)), nil
		}
		return fmt.Sprintf("set \"%s=%s\"", varName, strings.ReplaceAll(val, `"`, `\"`)), nil
	default:
		return "", fmt.Errorf("unsupported shell type: %v", shellType)
	}
}

func decideShellType(shellType ShellType) (ShellType, error) {
	switch shellType {
	case ShellTypeSh, ShellTypePowershell, ShellTypeCmd:
		return shellType, nil
	case ShellTypeAuto:
		shellName, err := detectUserShell()
		if err != nil {
			return ShellTypeAuto, fmt.Errorf("cannot detect user shell: %w", err)
		}
		log.Debug().Str("shell", shellName).Msg("detected user shell")
		return shellTypeOf(shellName), nil
	default:
		return ShellTypeAuto, fmt.Errorf("unsupported shell type: %v", shellType)
	}
}

func shellTypeOf(shellName string) ShellType {
	shellName = strings.TrimSuffix(strings.ToLower(shellName), ".exe")
	switch shellName {
	case "powershell", "pwsh":
		return ShellTypePowershell
	case "cmd":
		return ShellTypeCmd
	default:
		return ShellTypeSh
	}
}

var knownShells = []string{
	"bash", "zsh", "fish", "ksh", "sh", "dash", "tcsh", "csh",
	"powershell", "pwsh", "cmd",
}

// detectUserShell walks the parent process chain looking for a known shell
// and falls back to SHELL / COMSPEC, which only name the default shell.
func detectUserShell() (string, error) {
	p, err := process.NewProcess(int32(os.Getppid()))
	if err != nil {
		return "", fmt.Errorf("cannot get parent process: %w", err)
	}
	seen := map[int32]struct{}{}
	for p != nil {
		if _, ok := seen[p.Pid]; ok {
			break
		}
		seen[p.Pid] = struct{}{}

		name, _ := p.Name()
		if name == "" {
			if exe, _ := p.Exe(); exe != "" {
				name = filepath.Base(exe)
			}
		}
		n := strings.TrimSuffix(strings.ToLower(name), ".exe")
		for _, k := range knownShells {
			if strings.Contains(n, k) {
				return name, nil
			}
		}

		parent, perr := p.Parent()
		if perr != nil || parent == nil {
			break
		}
		p = parent
	}

	if sh := os.Getenv("SHELL"); sh != "" {
		return filepath.Base(sh), nil
	}
	if com := os.Getenv("COMSPEC"); com != "" {
		return filepath.Base(com), nil
	}
	return "", fmt.Errorf("user shell not detected")
}

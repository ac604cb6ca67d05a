//go:build windows

package paths

func edgeWindows(dir string, perUser bool) Layout {
	exe := []string{"Microsoft", dir, "Application", "msedge.exe"}
	l := Layout{
		Executables: []Candidate{
			{EnvVar: "PROGRAMFILES(X86)", Elem: exe},
			{EnvVar: "PROGRAMFILES", Elem: exe},
		},
		UserData: Candidate{EnvVar: "LOCALAPPDATA", Elem: []string{"Microsoft", dir, "User Data"}},
	}
	// Canary only installs per user.
	if perUser {
		l.Executables = append(l.Executables, Candidate{EnvVar: "LOCALAPPDATA", Elem: exe})
	}
	return l
}

var layouts = map[string]Layout{
	"stable": edgeWindows("Edge", false),
	"beta":   edgeWindows("Edge Beta", false),
	"dev":    edgeWindows("Edge Dev", false),
	"canary": edgeWindows("Edge SxS", true),
}

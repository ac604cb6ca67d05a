//go:build linux

package paths

func edgeLinux(suffix string) Layout {
	name := "microsoft-edge" + suffix
	l := Layout{
		Executables: []Candidate{
			{Elem: []string{"/opt", "microsoft", "msedge" + suffix, "msedge"}},
			{Elem: []string{"/usr", "bin", name}},
		},
		UserData: Candidate{EnvVar: "HOME", Elem: []string{".config", name}},
	}
	if suffix == "" {
		l.Executables = append(l.Executables, Candidate{Elem: []string{"/usr", "bin", "microsoft-edge-stable"}})
	}
	return l
}

// Edge has no canary build for linux.
var layouts = map[string]Layout{
	"stable": edgeLinux(""),
	"beta":   edgeLinux("-beta"),
	"dev":    edgeLinux("-dev"),
}

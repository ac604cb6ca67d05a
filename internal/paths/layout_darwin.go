//go:build darwin

package paths

func edgeDarwin(app string) Layout {
	bundle := []string{"Applications", app + ".app", "Contents", "MacOS", app}
	return Layout{
		Executables: []Candidate{
			{Elem: append([]string{"/"}, bundle...)},
			{EnvVar: "HOME", Elem: bundle},
		},
		UserData: Candidate{EnvVar: "HOME", Elem: []string{"Library", "Application Support", app}},
	}
}

var layouts = map[string]Layout{
	"stable": edgeDarwin("Microsoft Edge"),
	"beta":   edgeDarwin("Microsoft Edge Beta"),
	"dev":    edgeDarwin("Microsoft Edge Dev"),
	"canary": edgeDarwin("Microsoft Edge Canary"),
}

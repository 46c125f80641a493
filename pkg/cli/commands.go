package cli

// CommandSpec describes one filter the CLI can run. Keep this list
// synchronized with apply() in run.go so help text and validation stay a
// single source of truth.
type CommandSpec struct {
	Name        string
	Usage       string
	Description string
	NeedsKernel bool
	HasParallel bool
}

// Commands is the authoritative list of filters exposed by the CLI.
var Commands = []CommandSpec{
	{
		Name:        "grayscale",
		Usage:       "-f grayscale [-tasks N]",
		Description: "Convert to Rec. 709 luma.",
		HasParallel: true,
	},
	{
		Name:        "invert",
		Usage:       "-f invert [-tasks N]",
		Description: "Invert every color channel.",
		HasParallel: true,
	},
	{
		Name:        "blur",
		Usage:       "-f blur -k <odd kernel> [-tasks N]",
		Description: "Box (mean) blur over a square window.",
		NeedsKernel: true,
		HasParallel: true,
	},
	{
		Name:        "median",
		Usage:       "-f median -k <odd kernel> [-tasks N]",
		Description: "Luminance median over a square window.",
		NeedsKernel: true,
		HasParallel: true,
	},
	{
		Name:        "contrast",
		Usage:       "-f contrast -c <amount in [0,1]>",
		Description: "Linear contrast ramp. Sequential only.",
	},
}

func lookupCommand(name string) (CommandSpec, bool) {
	for _, c := range Commands {
		if c.Name == name {
			return c, true
		}
	}
	return CommandSpec{}, false
}

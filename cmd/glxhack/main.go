package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/leodido/structcli"
	"github.com/lolhack/glxhack"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/thediveo/enumflag/v2"
)

// Build metadata injected via ldflags.
// When built without ldflags these remain at their zero values and the
// version command omits them.
var (
	version = ""
	commit  = ""
	date    = ""
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:   "glxhack",
		Short: "Inspect and rewrite GLX context attribute lists",
		Long: `glxhack runs the GLX context version policy outside of a game.

It parses attribute lists, applies the compatibility profile rewrite the
Wine x11 driver performs, queries the current renderer's profile ceilings
and checks extension strings. Use it to reproduce driver-side decisions.`,
		SilenceUsage: true,
		PersistentPreRun: func(c *cobra.Command, args []string) {
			if verbose {
				glxhack.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
					Level: slog.LevelDebug,
				})))
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log policy decisions to stderr")

	root.AddCommand(applyCmd())
	root.AddCommand(getCmd())
	root.AddCommand(hasExtensionCmd())
	root.AddCommand(probeCmd())
	root.AddCommand(initHookCmd())
	root.AddCommand(versionCmd())
	return root
}

// ApplyOptions defines flags for the apply subcommand.
type ApplyOptions struct {
	Attribs  string             `flag:"attribs" flagshort:"a" flagdescr:"Attribute list as comma separated KEY=VALUE pairs" flagrequired:"true"`
	Method   glxhack.HackMethod `flag:"method" flagshort:"m" flagdescr:"Rewrite method (compat, core); defaults to $WINE_X11DRV_LOL_METHOD" flagcustom:"true"`
	Ceiling  string             `flag:"ceiling" flagshort:"c" flagdescr:"Assume this compatibility ceiling (MAJOR.MINOR) instead of querying the renderer"`
	Override bool               `flag:"override" flagdescr:"Behave as if MESA_GL_VERSION_OVERRIDE were set"`
	Bypass   bool               `flag:"bypass" flagdescr:"Behave as if WINE_X11DRV_OVERRIDE_LOL were set"`
	JSON     bool               `flag:"json" flagshort:"j" flagdescr:"Output in JSON format"`
}

func (o *ApplyOptions) Attach(c *cobra.Command) error {
	return structcli.Define(c, o)
}

func (o *ApplyOptions) DefineMethod(name, short, descr string, structField reflect.StructField, fieldValue reflect.Value) (pflag.Value, string) {
	fieldPtr := fieldValue.Addr().Interface().(*glxhack.HackMethod)
	*fieldPtr = glxhack.DefaultHackMethod
	return enumflag.New(fieldPtr, "method", methodIdentifierMap, enumflag.EnumCaseInsensitive), descr
}

func (o *ApplyOptions) DecodeMethod(input any) (any, error) {
	s, ok := input.(string)
	if !ok {
		return input, nil
	}

	return parseMethod(s)
}

// config resolves the policy configuration: the process environment first,
// then any explicitly set flags on top.
func (o *ApplyOptions) config(c *cobra.Command, env glxhack.Environment) glxhack.Config {
	cfg := glxhack.LoadConfig(env)
	if c.Flags().Changed("method") {
		cfg.Method = o.Method
	}
	cfg.Override = cfg.Override || o.Override
	cfg.Bypass = cfg.Bypass || o.Bypass
	return cfg
}

func (o *ApplyOptions) prober() (glxhack.Prober, error) {
	if o.Ceiling == "" {
		return glxhack.NewProber(), nil
	}
	v, err := glxhack.ParseProfileVersion(o.Ceiling)
	if err != nil {
		return nil, fmt.Errorf("--ceiling: %w", err)
	}
	return glxhack.StaticRenderer{Compatibility: v}, nil
}

type applyResult struct {
	Decision glxhack.Decision `json:"decision"`
	Attribs  string           `json:"attribs"`
	Raw      []int32          `json:"raw"`
}

func applyCmd() *cobra.Command {
	opts := &ApplyOptions{}

	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Apply the version policy to an attribute list",
		Example: `  glxhack apply -a 0x2091=3,0x2092=2,0x9126=2 --ceiling 3.0
  glxhack apply -a 0x2091=4,0x2092=5,0x9126=2 --method core --override`,
		PreRunE: func(c *cobra.Command, args []string) error {
			return structcli.Unmarshal(c, opts)
		},
		RunE: func(c *cobra.Command, args []string) error {
			l, err := glxhack.Parse(opts.Attribs)
			if err != nil {
				return err
			}
			p, err := opts.prober()
			if err != nil {
				return err
			}

			d := glxhack.Apply(l, opts.config(c, glxhack.ProcessEnv{}), p)

			if opts.JSON {
				return printJSON(applyResult{
					Decision: d,
					Attribs:  l.String(),
					Raw:      glxhack.Terminated(l),
				})
			}
			fmt.Print(d)
			fmt.Printf("Attributes: %s\n", l)
			return nil
		},
	}

	if err := opts.Attach(cmd); err != nil {
		panic(err)
	}
	return cmd
}

// GetOptions defines flags for the get subcommand.
type GetOptions struct {
	Attribs string `flag:"attribs" flagshort:"a" flagdescr:"Attribute list as comma separated KEY=VALUE pairs" flagrequired:"true"`
	Key     string `flag:"key" flagshort:"k" flagdescr:"Attribute key (e.g. 0x2091)" flagrequired:"true"`
	JSON    bool   `flag:"json" flagshort:"j" flagdescr:"Output in JSON format"`
}

func (o *GetOptions) Attach(c *cobra.Command) error {
	return structcli.Define(c, o)
}

func getCmd() *cobra.Command {
	opts := &GetOptions{}

	cmd := &cobra.Command{
		Use:   "get",
		Short: "Look up an attribute value (0 when absent)",
		PreRunE: func(c *cobra.Command, args []string) error {
			return structcli.Unmarshal(c, opts)
		},
		RunE: func(c *cobra.Command, args []string) error {
			l, err := glxhack.Parse(opts.Attribs)
			if err != nil {
				return err
			}
			key, err := parseKey(opts.Key)
			if err != nil {
				return err
			}

			value, present := l.Lookup(key)
			if opts.JSON {
				return printJSON(map[string]any{
					"key":     key,
					"value":   value,
					"present": present,
				})
			}
			fmt.Println(glxhack.AttribListGet(key, l))
			return nil
		},
	}

	if err := opts.Attach(cmd); err != nil {
		panic(err)
	}
	return cmd
}

// HasExtensionOptions defines flags for the has-extension subcommand.
type HasExtensionOptions struct {
	JSON bool `flag:"json" flagshort:"j" flagdescr:"Output in JSON format"`
}

func (o *HasExtensionOptions) Attach(c *cobra.Command) error {
	return structcli.Define(c, o)
}

func hasExtensionCmd() *cobra.Command {
	opts := &HasExtensionOptions{}

	cmd := &cobra.Command{
		Use:   "has-extension LIST NAME",
		Short: "Check whether an extension string list contains NAME",
		Long: `Check whether the whitespace separated extension list contains NAME.
Exits with code 0 if present, 1 if absent.`,
		Args: cobra.ExactArgs(2),
		PreRunE: func(c *cobra.Command, args []string) error {
			return structcli.Unmarshal(c, opts)
		},
		RunE: func(c *cobra.Command, args []string) error {
			found := glxhack.HasExtension(args[0], args[1])

			if opts.JSON {
				if err := printJSON(map[string]any{"extension": args[1], "present": found}); err != nil {
					return err
				}
			} else if found {
				fmt.Printf("OK: %s present\n", args[1])
			} else {
				fmt.Fprintf(os.Stderr, "FAIL: %s not present\n", args[1])
			}
			if !found {
				os.Exit(1)
			}
			return nil
		},
	}

	if err := opts.Attach(cmd); err != nil {
		panic(err)
	}
	return cmd
}

// ProbeOptions defines flags for the probe subcommand.
type ProbeOptions struct {
	JSON bool `flag:"json" flagshort:"j" flagdescr:"Output in JSON format"`
}

func (o *ProbeOptions) Attach(c *cobra.Command) error {
	return structcli.Define(c, o)
}

func probeCmd() *cobra.Command {
	opts := &ProbeOptions{}

	cmd := &cobra.Command{
		Use:   "probe",
		Short: "Query the current renderer's profile ceilings",
		Long: `Query the current renderer's core and compatibility profile ceilings
through GLX_MESA_query_renderer. The query needs a current GLX context, so
outside of a GL application the ceilings are usually reported as unknown.`,
		PreRunE: func(c *cobra.Command, args []string) error {
			return structcli.Unmarshal(c, opts)
		},
		RunE: func(c *cobra.Command, args []string) error {
			r := glxhack.Probe(glxhack.NewProber())

			if opts.JSON {
				return printJSON(r)
			}
			fmt.Print(r)
			return nil
		},
	}

	if err := opts.Attach(cmd); err != nil {
		panic(err)
	}
	return cmd
}

// InitHookOptions defines flags for the init-hook subcommand.
type InitHookOptions struct {
	Exe  string `flag:"exe" flagshort:"e" flagdescr:"Executable path to match (defaults to this process)"`
	JSON bool   `flag:"json" flagshort:"j" flagdescr:"Output in JSON format"`
}

func (o *InitHookOptions) Attach(c *cobra.Command) error {
	return structcli.Define(c, o)
}

func (o *InitHookOptions) locator() glxhack.ExecutableLocator {
	if o.Exe == "" {
		return glxhack.ProcExecutable{}
	}
	exe := o.Exe
	return glxhack.ExecutableFunc(func() (string, error) { return exe, nil })
}

func initHookCmd() *cobra.Command {
	opts := &InitHookOptions{}

	cmd := &cobra.Command{
		Use:   "init-hook",
		Short: "Dry-run the driver init hook against an executable path",
		PreRunE: func(c *cobra.Command, args []string) error {
			return structcli.Unmarshal(c, opts)
		},
		RunE: func(c *cobra.Command, args []string) error {
			env := glxhack.MapEnv{}
			changed, err := glxhack.InitHook(env, opts.locator())
			if err != nil {
				return err
			}

			if opts.JSON {
				return printJSON(map[string]any{
					"matched": changed,
					"env":     env,
				})
			}
			if !changed {
				fmt.Println("not matched: environment unchanged")
				return nil
			}
			for k, v := range env {
				fmt.Printf("%s=%s\n", k, v)
			}
			return nil
		},
	}

	if err := opts.Attach(cmd); err != nil {
		panic(err)
	}
	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show tool version and renderer query availability",
		RunE: func(c *cobra.Command, args []string) error {
			if version != "" {
				fmt.Printf("glxhack %s", version)
				if commit != "" {
					fmt.Printf(" (%s)", commit)
				}
				if date != "" {
					fmt.Printf(" built %s", date)
				}
				fmt.Println()
			} else {
				fmt.Println("glxhack (dev)")
			}

			status := "unavailable"
			if _, ok := glxhack.NewProber().Load(); ok {
				status = "available"
			}
			fmt.Printf("Renderer query: %s\n", status)
			return nil
		},
	}
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

var methodIdentifierMap = func() map[glxhack.HackMethod][]string {
	ids := make(map[glxhack.HackMethod][]string, len(glxhack.HackMethodValues()))
	for _, m := range glxhack.HackMethodValues() {
		ids[m] = []string{m.String()}
	}
	return ids
}()

func parseMethod(input string) (glxhack.HackMethod, error) {
	var m glxhack.HackMethod
	v := enumflag.New(&m, "method", methodIdentifierMap, enumflag.EnumCaseInsensitive)
	if err := v.Set(strings.TrimSpace(input)); err != nil {
		return m, fmt.Errorf("unknown method: %q (available: %s)", input, strings.Join(glxhack.HackMethodNames(), ", "))
	}
	return m, nil
}

func parseKey(input string) (int32, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(input), 0, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid attribute key %q: %w", input, err)
	}
	if n == int64(glxhack.Terminator) {
		return 0, fmt.Errorf("invalid attribute key %q: %w", input, glxhack.ErrTerminatorKey)
	}
	return int32(n), nil
}

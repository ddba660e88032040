package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/agentic-research/mtlx"
	"github.com/agentic-research/mtlx/format"
)

var refsJSON bool

func init() {
	refsCmd.Flags().BoolVar(&refsJSON, "json", false, "Emit the reference report as JSON")
	rootCmd.AddCommand(refsCmd)
}

var refsCmd = &cobra.Command{
	Use:   "refs [file.mtlx] [material]",
	Short: "Report what each material's shader refs, bindings, and inheritance resolve to",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := loadDocument(args[0])
		if err != nil {
			return err
		}
		materials := doc.Materials()
		if len(args) == 2 {
			m := doc.Material(args[1])
			if m.Element == nil {
				return fmt.Errorf("no material named %q", args[1])
			}
			materials = []mtlx.Material{m}
		}
		return runRefs(cmd.OutOrStdout(), materials, refsJSON)
	},
}

func runRefs(w io.Writer, materials []mtlx.Material, asJSON bool) error {
	if asJSON {
		report := make([]any, len(materials))
		for i, m := range materials {
			report[i] = materialReport(m)
		}
		fmt.Fprintln(w, format.JSONValue(report))
		return nil
	}
	for _, m := range materials {
		fmt.Fprintf(w, "material %s\n", m.Name())
		if inherited := m.InheritsFrom(); inherited.Element != nil {
			fmt.Fprintf(w, "  inherits %s\n", inherited.Name())
		}
		for _, sr := range m.ShaderRefs() {
			nd := sr.ReferencedNodeDef()
			if nd.Element != nil {
				fmt.Fprintf(w, "  shaderref %s -> nodedef %s\n", sr.Name(), nd.Name())
			} else {
				fmt.Fprintf(w, "  shaderref %s -> (unresolved)\n", sr.Name())
			}
			for _, o := range sr.ReferencedOutputs() {
				fmt.Fprintf(w, "    output %s\n", o.Path())
			}
		}
		for _, assign := range m.ReferencingMaterialAssigns() {
			fmt.Fprintf(w, "  assigned by %s\n", assign.Path())
		}
	}
	return nil
}

func materialReport(m mtlx.Material) map[string]any {
	report := map[string]any{"material": m.Name()}
	if inherited := m.InheritsFrom(); inherited.Element != nil {
		report["inherits"] = inherited.Name()
	}
	var refs []any
	for _, sr := range m.ShaderRefs() {
		entry := map[string]any{"shaderref": sr.Name()}
		if nd := sr.ReferencedNodeDef(); nd.Element != nil {
			entry["nodedef"] = nd.Name()
		}
		var outs []any
		for _, o := range sr.ReferencedOutputs() {
			outs = append(outs, o.Path())
		}
		if outs != nil {
			entry["outputs"] = outs
		}
		refs = append(refs, entry)
	}
	if refs != nil {
		report["shaderrefs"] = refs
	}
	var assigns []any
	for _, assign := range m.ReferencingMaterialAssigns() {
		assigns = append(assigns, assign.Path())
	}
	if assigns != nil {
		report["assignedBy"] = assigns
	}
	return report
}

package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/example/mm-worker/internal/config"
	"github.com/example/mm-worker/internal/events"
	"github.com/example/mm-worker/internal/format"
	"github.com/spf13/cobra"
)

func newFormatCmd(loader *config.Loader) *cobra.Command {
	flags := &runtimeFlagSet{}
	var paramsFile string
	var emitEvent bool

	cmd := &cobra.Command{
		Use:   "format [name=value...]",
		Short: "Render benchmark parameters for display",
		Long: `Format prints parameters as "name = value" pairs joined by ", ".
Values below 2*10^-precision or above 100 in magnitude use scientific notation.
Parameters from --file come first, in file order, followed by the arguments.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, env, err := loadRuntime(cmd, loader, flags, false)
			if err != nil {
				return err
			}

			params, err := collectParams(paramsFile, args)
			if err != nil {
				return err
			}
			if len(params) == 0 {
				return errors.New("no parameters given; pass name=value arguments or --file")
			}

			rendered, err := format.Benchmark(params, cfg.Precision)
			if err != nil {
				return err
			}

			env.Logger.WithField("parameters", len(params)).Debug("benchmark formatted")

			if emitEvent {
				values := make([]float64, 0, len(params))
				for _, param := range params {
					v, err := format.ToFloat(param.Value)
					if err != nil {
						return &format.ConversionError{Name: param.Name, Value: param.Value, Err: err}
					}
					values = append(values, v)
				}

				return events.NewEmitter(cmd.OutOrStdout()).EmitFields(events.TypeBenchmark, rendered, map[string]interface{}{
					"parameters": params.Names(),
					"precision":  cfg.Precision,
					"values":     env.Floats.FormatSlice(values),
				})
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}

	bindRuntimeFlags(cmd, flags)
	cmd.Flags().StringVarP(&paramsFile, "file", "f", "", "YAML file mapping parameter names to values")
	cmd.Flags().BoolVar(&emitEvent, "events", false, "Write an NDJSON benchmark event instead of plain text")

	return cmd
}

func collectParams(path string, assignments []string) (format.Params, error) {
	var params format.Params

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		fromFile, err := format.ParseParams(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		params = append(params, fromFile...)
	}

	fromArgs, err := format.ParseAssignments(assignments)
	if err != nil {
		return nil, err
	}

	return append(params, fromArgs...), nil
}

package cli

import (
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvqubo/internal/instance"
	"github.com/katalvlaran/lvqubo/internal/ui"
	"github.com/katalvlaran/lvqubo/knapsack"
	"github.com/katalvlaran/lvqubo/maxcut"
	"github.com/katalvlaran/lvqubo/partition"
	"github.com/katalvlaran/lvqubo/penalty"
	"github.com/katalvlaran/lvqubo/qubo"
	"github.com/katalvlaran/lvqubo/sampler"
)

// runInfo is the sampler bookkeeping printed with every result.
type runInfo struct {
	Problem       string        `json:"problem"`
	Backend       string        `json:"backend"`
	Label         string        `json:"label,omitempty"`
	RunID         uuid.UUID     `json:"run_id"`
	NumReads      int           `json:"num_reads"`
	NumVariables  int           `json:"num_variables"`
	ChainStrength float64       `json:"chain_strength,omitempty"`
	Elapsed       time.Duration `json:"elapsed_ns"`
}

func newRunInfo(problem string, in sampler.Info) runInfo {
	return runInfo{
		Problem:       problem,
		Backend:       in.Backend,
		Label:         in.Label,
		RunID:         in.RunID,
		NumReads:      in.NumReads,
		NumVariables:  in.NumVariables,
		ChainStrength: in.ChainStrength,
		Elapsed:       in.Elapsed,
	}
}

// logModel reports the size of an encoded model.
func logModel(problem string, m *qubo.Model) {
	ui.Debug().
		Str("problem", problem).
		Int("variables", len(m.Variables())).
		Int("coefficients", m.Len()).
		Float64("offset", m.Offset()).
		Msg("encoded")
}

// logRun reports a finished sampler call.
func logRun(set sampler.SampleSet) {
	ev := ui.Info().
		Str("backend", set.Info.Backend).
		Str("label", set.Info.Label).
		Stringer("run", set.Info.RunID).
		Int("reads", set.Info.NumReads).
		Int("distinct", set.Len()).
		Dur("elapsed", set.Info.Elapsed)
	if best, err := set.First(); err == nil {
		ev = ev.Float64("best", best.Energy)
	}
	ev.Msg("sampled")
}

// sample runs b on m, logging the call.
func sample(b sampler.Sampler, m *qubo.Model, p sampler.Params) (sampler.SampleSet, error) {
	set, err := b.Sample(m, p)
	if err != nil {
		return sampler.SampleSet{}, errors.Wrap(err, "sampling")
	}
	logRun(set)
	return set, nil
}

type cutOutput struct {
	Run     runInfo `json:"run"`
	Set0    []int   `json:"set0"`
	Set1    []int   `json:"set1"`
	CutSize float64 `json:"cut_size"`
	Energy  float64 `json:"energy"`
	Valid   *bool   `json:"valid,omitempty"`
	Error   string  `json:"error,omitempty"`
}

func newMaxcutCmd(s *settings) *cobra.Command {
	var graphFile string
	cmd := &cobra.Command{
		Use:   "maxcut",
		Short: "Find a maximum cut of a graph",
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := instance.LoadGraph(graphFile)
			if err != nil {
				return err
			}
			b, err := s.backend()
			if err != nil {
				return err
			}
			m, err := maxcut.Encode(g)
			if err != nil {
				return err
			}
			logModel("maxcut", m)
			set, err := sample(b, m, s.params())
			if err != nil {
				return err
			}
			res, err := maxcut.Interpret(set, g)
			if err != nil {
				return err
			}
			return instance.WriteJSON(cmd.OutOrStdout(), cutOutput{
				Run:     newRunInfo("maxcut", set.Info),
				Set0:    res.Set0,
				Set1:    res.Set1,
				CutSize: res.CutSize,
				Energy:  res.Energy,
			})
		},
	}
	cmd.Flags().StringVar(&graphFile, "graph", "", "Graph JSON file")
	_ = cmd.MarkFlagRequired("graph")
	return cmd
}

func newPartitionCmd(s *settings) *cobra.Command {
	var (
		graphFile string
		gamma     float64
	)
	cmd := &cobra.Command{
		Use:   "partition",
		Short: "Split a graph into two equal halves with a minimum cut",
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := instance.LoadGraph(graphFile)
			if err != nil {
				return err
			}
			b, err := s.backend()
			if err != nil {
				return err
			}
			m, err := partition.Encode(g, gamma)
			if err != nil {
				return err
			}
			logModel("partition", m)
			set, err := sample(b, m, s.params())
			if err != nil {
				return err
			}
			res, err := partition.Interpret(set, g)
			if err != nil && !errors.Is(err, partition.ErrInvalidPartition) {
				return err
			}
			out := cutOutput{
				Run:     newRunInfo("partition", set.Info),
				Set0:    res.Set0,
				Set1:    res.Set1,
				CutSize: res.CutSize,
				Energy:  res.Energy,
				Valid:   &res.Valid,
			}
			if err != nil {
				ui.Warn().Int("set0", len(res.Set0)).Int("set1", len(res.Set1)).Float64("gamma", gamma).
					Msg("invalid partition, consider a larger --gamma")
				out.Error = err.Error()
			}
			if werr := instance.WriteJSON(cmd.OutOrStdout(), out); werr != nil {
				return werr
			}
			return err
		},
	}
	cmd.Flags().StringVar(&graphFile, "graph", "", "Graph JSON file")
	cmd.Flags().Float64Var(&gamma, "gamma", 1, "Size-penalty weight")
	_ = cmd.MarkFlagRequired("graph")
	return cmd
}

type knapsackOutput struct {
	Run         runInfo `json:"run"`
	Items       []int   `json:"items"`
	TotalWeight float64 `json:"total_weight"`
	TotalValue  float64 `json:"total_value"`
	Energy      float64 `json:"energy"`
}

func newKnapsackCmd(s *settings) *cobra.Command {
	var (
		itemsFile string
		weight    float64
	)
	cmd := &cobra.Command{
		Use:   "knapsack",
		Short: "Pack the most valuable items within a capacity",
		Long: "With a non-zero --penalty the capacity is folded into the model with slack\n" +
			"variables; a negative weight is rejected. With --penalty 0 it is declared to a\n" +
			"constraint-aware sampler; exact and anneal are then wrapped in the hybrid backend.",
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := instance.LoadKnapsack(itemsFile)
			if err != nil {
				return err
			}
			b, err := s.backend()
			if err != nil {
				return err
			}

			var set sampler.SampleSet
			if weight != 0 {
				m, err := knapsack.EncodePenalty(in, weight)
				if err != nil {
					return err
				}
				logModel("knapsack", m)
				if set, err = sample(b, m, s.params()); err != nil {
					return err
				}
			} else {
				cs, ok := b.(sampler.ConstrainedSampler)
				if !ok {
					cs = sampler.Hybrid{Base: b}
				}
				m, err := knapsack.Objective(in)
				if err != nil {
					return err
				}
				logModel("knapsack", m)
				set, err = cs.SampleConstrained(m, []qubo.Constraint{knapsack.CapacityConstraint(in)}, s.params())
				if err != nil {
					return errors.Wrap(err, "sampling")
				}
				logRun(set)
			}

			res, err := knapsack.Interpret(set, in)
			if err != nil {
				return err
			}
			return instance.WriteJSON(cmd.OutOrStdout(), knapsackOutput{
				Run:         newRunInfo("knapsack", set.Info),
				Items:       res.Items,
				TotalWeight: res.TotalWeight,
				TotalValue:  res.TotalValue,
				Energy:      res.Energy,
			})
		},
	}
	cmd.Flags().StringVar(&itemsFile, "items", "", "Knapsack JSON file")
	cmd.Flags().Float64Var(&weight, "penalty", 0, "Capacity penalty weight A >= 0 (0 declares the constraint instead)")
	_ = cmd.MarkFlagRequired("items")
	return cmd
}

type toyOutput struct {
	Run       runInfo  `json:"run"`
	Ones      []int    `json:"ones"`
	Objective float64  `json:"objective"`
	Energy    float64  `json:"energy"`
	Violated  []string `json:"violated,omitempty"`
}

func newToyCmd(s *settings) *cobra.Command {
	weight := penalty.ToyWeight
	cmd := &cobra.Command{
		Use:   "toy",
		Short: "Solve the three-variable penalty-method example",
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := s.backend()
			if err != nil {
				return err
			}
			p := penalty.Toy()
			m, err := penalty.Encode(p, weight)
			if err != nil {
				return err
			}
			logModel("toy", m)
			set, err := sample(b, m, s.params())
			if err != nil {
				return err
			}
			res, err := penalty.Interpret(set, p)
			if err != nil && !errors.Is(err, penalty.ErrInfeasible) {
				return err
			}
			out := toyOutput{
				Run:       newRunInfo("toy", set.Info),
				Ones:      res.Assignment.Ones(),
				Objective: res.Objective,
				Energy:    res.Energy,
			}
			for _, v := range res.Report.Violations {
				out.Violated = append(out.Violated, v.Label)
			}
			if werr := instance.WriteJSON(cmd.OutOrStdout(), out); werr != nil {
				return werr
			}
			return err
		},
	}
	cmd.Flags().Float64Var(&weight, "weight", penalty.ToyWeight, "Penalty weight")
	return cmd
}

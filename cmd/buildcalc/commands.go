package main

import (
	"context"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/bytedance/sonic"
	"gopkg.in/yaml.v3"

	"github.com/udisondev/buildcalc/internal/data"
	"github.com/udisondev/buildcalc/internal/export"
	"github.com/udisondev/buildcalc/internal/game/ordering"
	"github.com/udisondev/buildcalc/internal/model"
)

// readLoadout reads a YAML (or JSON) loadout file. The rank token is normalized.
func readLoadout(path string) (model.Loadout, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return model.Loadout{}, fmt.Errorf("reading loadout %s: %w", path, err)
	}
	var l model.Loadout
	if err := yaml.Unmarshal(raw, &l); err != nil {
		return model.Loadout{}, fmt.Errorf("parsing loadout %s: %w", path, err)
	}
	l.TargetRank = data.NormalizeRank(string(l.TargetRank))
	return l, nil
}

func printJSON(v any) error {
	out, err := sonic.ConfigStd.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding output: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

// splitFlags separates "--flag" arguments from positional ones.
func splitFlags(args []string) (positional []string, flags map[string]bool) {
	flags = make(map[string]bool)
	for _, a := range args {
		if strings.HasPrefix(a, "--") {
			flags[strings.TrimPrefix(a, "--")] = true
			continue
		}
		positional = append(positional, a)
	}
	return positional, flags
}

func runEval(_ context.Context, a *app, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: eval <loadout.yaml>")
	}
	l, err := readLoadout(args[0])
	if err != nil {
		return err
	}
	return printJSON(a.evaluator.Evaluate(l))
}

func runRank(_ context.Context, a *app, args []string) error {
	pos, flags := splitFlags(args)
	if len(pos) < 3 {
		return fmt.Errorf("usage: rank <ARMOR_TYPE> <rank> <skill>... [--xlsx]")
	}
	t := data.ArmorType(strings.ToUpper(pos[0]))
	if !data.IsArmorType(string(t)) {
		return fmt.Errorf("unknown armor type %q", pos[0])
	}
	r, err := data.ParseRank(pos[1])
	if err != nil {
		return err
	}
	targets := pos[2:]
	slices.Sort(targets)

	ranked := a.engine.RankArmor(t, r, targets)
	for i, item := range ranked {
		fmt.Printf("%3d. %-32s score=%-3d slots=%v  %s\n",
			i+1, item.Armor.Name, item.Score, item.Armor.Slots, model.SkillListString(item.Armor.Skills))
	}

	if flags["xlsx"] {
		path, err := export.ArmorRankingXLSX(a.cfg.ExportDir, t, r, targets, ranked)
		if err != nil {
			return fmt.Errorf("exporting ranking: %w", err)
		}
		fmt.Printf("written %s\n", path)
	}
	return nil
}

func runWeapons(_ context.Context, a *app, args []string) error {
	pos, flags := splitFlags(args)
	if len(pos) < 2 {
		return fmt.Errorf("usage: weapons <WEAPON_TYPE> <rank> [sort-key] [--desc]")
	}
	t := data.WeaponType(strings.ToUpper(pos[0]))
	if !data.IsWeaponType(string(t)) {
		return fmt.Errorf("unknown weapon type %q", pos[0])
	}
	r, err := data.ParseRank(pos[1])
	if err != nil {
		return err
	}
	key := ordering.SortByName
	if len(pos) > 2 {
		if key, err = ordering.ParseWeaponSortKey(pos[2]); err != nil {
			return err
		}
	}

	fmt.Printf("%s, %s\n", t, r)
	for _, w := range a.engine.Weapons(t, r, key, flags["desc"]) {
		fmt.Printf("  %-32s atk=%-4d aff=%-4d def=%-3d %-14s %-14s slots=%v rampage=%v sharpness=[%s]\n",
			w.Name, w.Stats.Attack, w.Stats.Affinity, w.Stats.Defense,
			payloadString(w.Stats.Element), payloadString(w.Stats.Status),
			w.Slots, w.RampageSlots, model.SharpnessString(w.MaxSharpness))
	}
	return nil
}

func payloadString(e *data.Element) string {
	if e == nil {
		return "-"
	}
	return fmt.Sprintf("%s %d", e.Type, e.Power)
}

func runSave(ctx context.Context, a *app, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: save <loadout.yaml>")
	}
	l, err := readLoadout(args[0])
	if err != nil {
		return err
	}
	repo, err := a.builds(ctx)
	if err != nil {
		return err
	}
	id, err := repo.Save(ctx, l)
	if err != nil {
		return err
	}
	fmt.Println(id)
	return nil
}

func runLoad(ctx context.Context, a *app, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: load <id>")
	}
	repo, err := a.builds(ctx)
	if err != nil {
		return err
	}
	l, err := repo.Get(ctx, args[0])
	if err != nil {
		return err
	}
	return printJSON(struct {
		Loadout    model.Loadout `json:"loadout"`
		Evaluation any           `json:"evaluation"`
	}{l, a.evaluator.Evaluate(l)})
}

func runDelete(ctx context.Context, a *app, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: delete <id>")
	}
	repo, err := a.builds(ctx)
	if err != nil {
		return err
	}
	if err := repo.Delete(ctx, args[0]); err != nil {
		return err
	}
	fmt.Printf("deleted %s\n", args[0])
	return nil
}

func runList(ctx context.Context, a *app, _ []string) error {
	repo, err := a.builds(ctx)
	if err != nil {
		return err
	}
	builds, err := repo.List(ctx)
	if err != nil {
		return err
	}
	for _, b := range builds {
		fmt.Printf("%s  %-24s %-7s %s\n", b.ID, b.Name, b.TargetRank, b.UpdatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}

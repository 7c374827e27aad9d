package quiz

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tzehon/somm/internal/catalog"
	"github.com/tzehon/somm/internal/random"
)

// ErrCannotGenerate is returned when a strategy's preconditions are
// unmet for the current pool. Callers skip the slot or try another
// mode; the error never terminates a session.
var ErrCannotGenerate = errors.New("quiz: cannot generate question")

// Generator builds questions by sampling the catalog.
type Generator struct {
	sampler *random.Sampler
	cat     *catalog.Catalog
}

// NewGenerator creates a Generator over the full catalog. The sampler
// carries the randomness source; seed it for reproducible output.
func NewGenerator(cat *catalog.Catalog, sampler *random.Sampler) *Generator {
	return &Generator{sampler: sampler, cat: cat}
}

// Generate builds one question of the given mode from the filtered
// pool. Distractor styles and the origin vocabulary always come from
// the full catalog, so narrowing the category focus doesn't shrink the
// wrong-answer space.
func (g *Generator) Generate(mode Mode, pool []catalog.Item, filtered []catalog.Style, optionCount int) (Question, error) {
	switch mode {
	case ModeCategoryMatch:
		return g.categoryMatch(pool, optionCount)
	case ModeWineSelection:
		return g.wineSelection(pool, filtered)
	case ModeQuickFire:
		return g.quickFire(pool)
	case ModeDescriptionMatch:
		return g.descriptionMatch(filtered, optionCount)
	case ModeOddOneOut:
		return g.oddOneOut(filtered)
	case ModeOriginMatch:
		return g.originMatch(pool, optionCount)
	default:
		return nil, fmt.Errorf("%w: unknown mode %q", ErrCannotGenerate, mode)
	}
}

func (g *Generator) categoryMatch(pool []catalog.Item, optionCount int) (Question, error) {
	if len(g.cat.Styles) < optionCount {
		return nil, fmt.Errorf("%w: need %d styles for category-match", ErrCannotGenerate, optionCount)
	}
	wine, err := random.PickOne(g.sampler, pool)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCannotGenerate, err)
	}

	correct := g.cat.StyleByID(wine.StyleID)
	if correct == nil {
		return nil, fmt.Errorf("%w: wine %q has unknown style", ErrCannotGenerate, wine.Name)
	}

	options := []StyleOption{styleOption(*correct, true)}
	for _, s := range random.Sample(g.sampler, g.otherStyles(wine.StyleID), optionCount-1) {
		options = append(options, styleOption(s, false))
	}

	return &CategoryMatchQuestion{
		Wine:      wine,
		Options:   random.Shuffle(g.sampler, options),
		CorrectID: correct.ID,
		HintText:  fmt.Sprintf("This wine originates from %s.", wine.Origin),
	}, nil
}

// wineSelection shows every wine of one style mixed with up to four
// distractors, capped at eight displayed options. The correct count
// reported to the consumer is the number of correct wines that
// survived the cap.
func (g *Generator) wineSelection(pool []catalog.Item, filtered []catalog.Style) (Question, error) {
	style, err := random.PickOne(g.sampler, filtered)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCannotGenerate, err)
	}
	if len(style.Wines) == 0 {
		return nil, fmt.Errorf("%w: style %q has no wines", ErrCannotGenerate, style.ID)
	}

	var options []WineOption
	for _, w := range style.Wines {
		options = append(options, WineOption{
			Name:       w.Name,
			Origin:     w.Origin,
			StyleName:  style.Name,
			StyleColor: style.Color,
			Correct:    true,
		})
	}

	var others []catalog.Item
	for _, it := range pool {
		if it.StyleID != style.ID {
			others = append(others, it)
		}
	}
	for _, it := range random.Sample(g.sampler, others, 4) {
		options = append(options, WineOption{
			Name:       it.Name,
			Origin:     it.Origin,
			StyleName:  it.StyleName,
			StyleColor: it.StyleColor,
			Correct:    false,
		})
	}

	options = random.Shuffle(g.sampler, options)
	if len(options) > 8 {
		options = options[:8]
	}

	var correctNames []string
	for _, o := range options {
		if o.Correct {
			correctNames = append(correctNames, o.Name)
		}
	}

	return &WineSelectionQuestion{
		Style:        style,
		Options:      options,
		CorrectNames: correctNames,
		CorrectCount: len(correctNames),
		HintText:     firstSentence(style.Description),
	}, nil
}

func (g *Generator) quickFire(pool []catalog.Item) (Question, error) {
	wine, err := random.PickOne(g.sampler, pool)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCannotGenerate, err)
	}

	statementStyle := wine.StyleName
	isTrue := g.sampler.Chance(0.5)
	if !isTrue {
		wrong, err := random.PickOne(g.sampler, g.otherStyles(wine.StyleID))
		if err != nil {
			return nil, fmt.Errorf("%w: no other style for false pairing", ErrCannotGenerate)
		}
		statementStyle = wrong.Name
	}

	return &QuickFireQuestion{
		Statement: fmt.Sprintf("%s is a %s", wine.Name, styleNoun(statementStyle)),
		IsTrue:    isTrue,
		Wine:      wine,
		TimeLimit: QuickFireTimeLimit,
		HintText:  fmt.Sprintf("Think about wines from %s.", wine.Origin),
	}, nil
}

func (g *Generator) descriptionMatch(filtered []catalog.Style, optionCount int) (Question, error) {
	if len(g.cat.Styles) < optionCount {
		return nil, fmt.Errorf("%w: need %d styles for description-match", ErrCannotGenerate, optionCount)
	}
	style, err := random.PickOne(g.sampler, filtered)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCannotGenerate, err)
	}

	options := []StyleOption{styleOption(style, true)}
	for _, s := range random.Sample(g.sampler, g.otherStyles(style.ID), optionCount-1) {
		options = append(options, styleOption(s, false))
	}

	var examples []string
	for i, w := range style.Wines {
		if i == 2 {
			break
		}
		examples = append(examples, w.Name)
	}

	return &DescriptionMatchQuestion{
		Description: style.Description,
		Style:       style,
		Options:     random.Shuffle(g.sampler, options),
		CorrectID:   style.ID,
		HintText:    fmt.Sprintf("Examples of this style include %s.", strings.Join(examples, ", ")),
	}, nil
}

// oddOneOut needs a style with at least three wines and a second
// style with at least one.
func (g *Generator) oddOneOut(filtered []catalog.Style) (Question, error) {
	var eligible []catalog.Style
	for _, s := range filtered {
		if len(s.Wines) >= 3 {
			eligible = append(eligible, s)
		}
	}
	if len(eligible) == 0 {
		return nil, fmt.Errorf("%w: no style with three wines", ErrCannotGenerate)
	}
	main, err := random.PickOne(g.sampler, eligible)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCannotGenerate, err)
	}

	var others []catalog.Style
	for _, s := range filtered {
		if s.ID != main.ID && len(s.Wines) > 0 {
			others = append(others, s)
		}
	}
	if len(others) == 0 {
		return nil, fmt.Errorf("%w: no second style for the odd wine", ErrCannotGenerate)
	}
	oddStyle, err := random.PickOne(g.sampler, others)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCannotGenerate, err)
	}
	oddWine, err := random.PickOne(g.sampler, oddStyle.Wines)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCannotGenerate, err)
	}

	var options []WineOption
	for _, w := range random.Sample(g.sampler, main.Wines, 3) {
		options = append(options, WineOption{
			Name:      w.Name,
			Origin:    w.Origin,
			StyleName: main.Name,
			Correct:   false,
		})
	}
	options = append(options, WineOption{
		Name:      oddWine.Name,
		Origin:    oddWine.Origin,
		StyleName: oddStyle.Name,
		Correct:   true,
	})

	return &OddOneOutQuestion{
		Options:    random.Shuffle(g.sampler, options),
		OddWine:    oddWine.Name,
		OddStyleID: oddStyle.ID,
		MainStyle:  main.Name,
		OddStyle:   oddStyle.Name,
		HintText:   "Three wines share the same style category. Look for the one from a different category.",
	}, nil
}

// originMatch draws distractor origins from the full catalog's
// vocabulary. When a multi-origin wine's correct set already fills the
// option budget the distractor draw clamps to zero.
func (g *Generator) originMatch(pool []catalog.Item, optionCount int) (Question, error) {
	wine, err := random.PickOne(g.sampler, pool)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCannotGenerate, err)
	}

	correctOrigins := catalog.SplitOrigins(wine.Origin)
	correctSet := make(map[string]bool, len(correctOrigins))
	for _, o := range correctOrigins {
		correctSet[o] = true
	}

	var distractors []string
	for _, o := range catalog.OriginVocabulary(g.cat.AllItems()) {
		if !correctSet[o] {
			distractors = append(distractors, o)
		}
	}

	options := make([]OriginOption, 0, optionCount)
	for _, o := range correctOrigins {
		options = append(options, OriginOption{Origin: o, Correct: true})
	}
	draw := optionCount - len(correctOrigins) // Sample clamps negative draws to zero
	for _, o := range random.Sample(g.sampler, distractors, draw) {
		options = append(options, OriginOption{Origin: o, Correct: false})
	}

	options = random.Shuffle(g.sampler, options)
	if len(options) > optionCount {
		options = options[:optionCount]
	}

	return &OriginMatchQuestion{
		Wine:           wine,
		Options:        options,
		CorrectOrigins: correctOrigins,
		HintText:       fmt.Sprintf("This is a %s.", styleNoun(wine.StyleName)),
	}, nil
}

func (g *Generator) otherStyles(excludeID string) []catalog.Style {
	var out []catalog.Style
	for _, s := range g.cat.Styles {
		if s.ID != excludeID {
			out = append(out, s)
		}
	}
	return out
}

func styleOption(s catalog.Style, correct bool) StyleOption {
	return StyleOption{
		ID:          s.ID,
		Name:        s.Name,
		Color:       s.Color,
		Description: s.Description,
		Correct:     correct,
	}
}

// styleNoun lowers a style name for use mid-sentence, dropping the
// trailing " wine".
func styleNoun(styleName string) string {
	return strings.TrimSuffix(strings.ToLower(styleName), " wine")
}

func firstSentence(s string) string {
	if i := strings.Index(s, "."); i >= 0 {
		return s[:i+1]
	}
	return s
}

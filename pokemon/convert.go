package pokemon

import (
	log "github.com/sirupsen/logrus"

	"porygon/database"
)

// converter copies fields between two records through the public interface.
type converter struct {
	f        *Factory
	src, dst Pokemon
}

func (c *converter) skip(field string, err error) {
	log.Debugf("[CONVERT] %s %s -> %s: skipping %s: %v", c.src.Species(), c.src.Game(), c.dst.Game(), field, err)
	c.f.Stats.IncSkippedFields(field)
}

// try tolerates a failed copy.
func (c *converter) try(field string, err error) {
	if err != nil {
		c.skip(field, err)
	}
}

// ToGame builds a copy of p for another game. Fields either game lacks keep
// the new record's defaults. Only a held item, ability or ball the target
// game cannot represent fails the conversion.
func (f *Factory) ToGame(p Pokemon, game string) (Pokemon, error) {
	g, err := database.GameByName(game)
	if err != nil {
		return nil, translate(err)
	}
	fromLabel, toLabel := generationLabel(p.Generation()), generationLabel(g.Generation)

	level := p.Level()
	if g.Generation <= 2 {
		level = max(level, 2)
	}
	dst, err := f.Make(p.Species(), game, p.Form(), level)
	if err != nil {
		f.Stats.IncConversions(fromLabel, toLabel, "failed")
		return nil, err
	}
	c := &converter{f: f, src: p, dst: dst}
	if err := c.copyAll(min(p.Generation(), g.Generation)); err != nil {
		f.Stats.IncConversions(fromLabel, toLabel, "failed")
		log.Debugf("[CONVERT] %s %s -> %s failed: %v", p.Species(), p.Game(), game, err)
		return nil, err
	}
	f.Stats.IncConversions(fromLabel, toLabel, "ok")
	return dst, nil
}

func (c *converter) copyAll(generation int) error {
	c.copyCommon()
	if generation >= 2 {
		if err := c.copyGen2(); err != nil {
			return err
		}
	}
	if generation >= 3 {
		if err := c.copyGen3(); err != nil {
			return err
		}
	}
	if generation >= 4 {
		c.copyLocation("egg location met", true)
		c.copyDate(false)
		c.copyDate(true)
	}
	// IV and personality copies can move a derived Unown letter.
	if form := c.src.Form(); c.dst.Form() != form {
		c.try("form", c.dst.SetForm(form))
	}
	hp := min(c.src.CurrentHP(), c.dst.Stats()[database.StatHP])
	c.try("current HP", c.dst.SetCurrentHP(hp))
	return nil
}

func (c *converter) copyCommon() {
	src, dst := c.src, c.dst
	c.try("condition", dst.SetCondition(src.Condition()))
	c.try("nickname", dst.SetNickname(src.Nickname()))
	c.try("trainer name", dst.SetOriginalTrainerName(src.OriginalTrainerName()))
	c.try("trainer id", dst.SetOriginalTrainerPublicID(src.OriginalTrainerPublicID()))
	c.try("experience", dst.SetExperience(src.Experience()))
	c.copyEVs()
	c.copyIVs()
	c.copyMoves()
}

func isGB(p Pokemon) bool {
	return p.Generation() <= 2
}

// copyEVs maps Special onto Special Attack and Special Defense and back.
func (c *converter) copyEVs() {
	evs := c.src.EVs()
	switch {
	case isGB(c.src) && !isGB(c.dst):
		evs[database.StatSpecialAttack] = evs[database.StatSpecial]
		evs[database.StatSpecialDefense] = evs[database.StatSpecial]
		delete(evs, database.StatSpecial)
		for stat, v := range evs {
			evs[stat] = min(v, 255)
		}
	case !isGB(c.src) && isGB(c.dst):
		evs[database.StatSpecial] = evs[database.StatSpecialAttack]
		delete(evs, database.StatSpecialAttack)
		delete(evs, database.StatSpecialDefense)
	}
	for _, stat := range statOrderOf(c.dst) {
		if v, ok := evs[stat]; ok {
			c.try("EV", c.dst.SetEV(stat, v))
		}
	}
}

// copyIVs scales between the 4-bit and 5-bit ranges. The Game Boy HP IV is
// derived, so it is never written there.
func (c *converter) copyIVs() {
	ivs := c.src.IVs()
	switch {
	case isGB(c.src) && !isGB(c.dst):
		for stat, v := range ivs {
			ivs[stat] = v * 2
		}
		ivs[database.StatSpecialAttack] = ivs[database.StatSpecial]
		ivs[database.StatSpecialDefense] = ivs[database.StatSpecial]
		delete(ivs, database.StatSpecial)
	case !isGB(c.src) && isGB(c.dst):
		for stat, v := range ivs {
			ivs[stat] = v / 2
		}
		ivs[database.StatSpecial] = ivs[database.StatSpecialAttack]
	}
	for _, stat := range statOrderOf(c.dst) {
		if isGB(c.dst) && stat == database.StatHP {
			continue
		}
		if v, ok := ivs[stat]; ok {
			c.try("IV", c.dst.SetIV(stat, v))
		}
	}
}

func statOrderOf(p Pokemon) []database.Stat {
	if isGB(p) {
		return gbStatOrder
	}
	return modernStatOrder
}

func (c *converter) copyMoves() {
	for i, slot := range c.src.Moves() {
		if err := c.dst.SetMove(slot.Move, i); err != nil {
			c.skip("move", err)
			continue
		}
		if slot.Move == database.None {
			continue
		}
		maxPP := c.dst.Moves()[i].MaxPP
		c.try("move PP", c.dst.SetMovePP(i, min(slot.PP, maxPP)))
	}
}

func (c *converter) copyGen2() error {
	src, dst := c.src, c.dst

	if isEgg, err := src.IsEgg(); err == nil {
		c.try("egg flag", dst.SetIsEgg(isEgg))
	}
	if _, fixed := dst.DatabaseEntry().FixedGender(); !fixed {
		if gender, err := src.Gender(); err == nil {
			c.try("gender", dst.SetGender(gender))
		}
	}
	if shiny, err := src.IsShiny(); err == nil {
		c.try("shininess", dst.SetShininess(shiny))
	}
	item, err := src.HeldItem()
	if err == nil {
		if err := dst.SetHeldItem(item); err != nil {
			return err
		}
	}
	if days, err := src.PokerusDuration(); err == nil {
		c.try("pokerus", dst.SetPokerusDuration(days))
	}
	if gender, err := src.OriginalTrainerGender(); err == nil {
		c.try("trainer gender", dst.SetOriginalTrainerGender(gender))
	}
	if friendship, err := src.CurrentTrainerFriendship(); err == nil {
		c.try("friendship", dst.SetCurrentTrainerFriendship(friendship))
	}
	if level, err := src.LevelMet(); err == nil {
		c.try("level met", dst.SetLevelMet(level))
	}
	return nil
}

func (c *converter) copyGen3() error {
	src, dst := c.src, c.dst

	c.try("trainer id", dst.SetOriginalTrainerID(src.OriginalTrainerID()))
	if nature, err := src.Nature(); err == nil {
		c.try("nature", dst.SetNature(nature))
	}
	if pid, err := src.Personality(); err == nil {
		c.try("personality", dst.SetPersonality(pid))
	}
	if language, err := src.Language(); err == nil {
		c.try("language", dst.SetLanguage(language))
	}
	ability, err := src.Ability()
	if err == nil {
		if err := dst.SetAbility(ability); err != nil {
			return err
		}
	}
	ball, err := src.Ball()
	if err == nil {
		if err := dst.SetBall(ball); err != nil {
			return err
		}
	}
	c.copyLocation("location met", false)
	if game, err := src.OriginalGame(); err == nil {
		c.try("original game", dst.SetOriginalGame(game))
	}
	if markings, err := src.Markings(); err == nil {
		for _, name := range Markings(dst.Generation()) {
			if markings[name] {
				c.try("marking", dst.SetMarking(name, true))
			}
		}
	}
	if ribbons, err := src.Ribbons(); err == nil {
		// CommonRibbons is ordered by rank, so each category only ever
		// moves up.
		for _, name := range CommonRibbons() {
			if ribbons[name] {
				c.try("ribbon", dst.SetRibbon(name, true))
			}
		}
	}
	if contest, err := src.ContestStats(); err == nil {
		for _, name := range ContestStats {
			c.try("contest stat", dst.SetContestStat(name, contest[name]))
		}
	}
	return nil
}

func (c *converter) copyLocation(field string, asEgg bool) {
	location, err := c.src.LocationMet(asEgg)
	if err != nil {
		return
	}
	c.try(field, c.dst.SetLocationMet(location, asEgg))
}

func (c *converter) copyDate(asEgg bool) {
	date, err := c.src.DateMet(asEgg)
	if err != nil {
		return
	}
	c.try("date met", c.dst.SetDateMet(date, asEgg))
}

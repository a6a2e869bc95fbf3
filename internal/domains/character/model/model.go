package model

import "innkeep/shared/model"

const (
	TableName  = "characters"
	EntityName = "character"

	FieldID          = "id"
	FieldName        = "name"
	FieldDescription = "description"
	FieldClass       = "class"

	FieldElementalPower         = "elemental_power"
	FieldSpellbookType          = "spellbook_type"
	FieldTimeMagicMastery       = "time_magic_mastery"
	FieldRaiseDeadAbility       = "raise_dead_ability"
	FieldWeaponType             = "weapon_type"
	FieldAssassinationTechnique = "assassination_technique"
	FieldVenomousStrikesMastery = "venomous_strikes_mastery"
	FieldVenomousBiteAbility    = "venomous_bite_ability"
	FieldShadowstepAbility      = "shadowstep_ability"
	FieldDemonSlayingAbility    = "demon_slaying_ability"
	FieldVengeanceMastery       = "vengeance_mastery"
	FieldRetributionAbility     = "retribution_ability"
	FieldFelbladeAbility        = "felblade_ability"
)

const (
	ClassMage                 = "mage"
	ClassTimeMage             = "time_mage"
	ClassNecromancer          = "necromancer"
	ClassAssassin             = "assassin"
	ClassViperAssassin        = "viper_assassin"
	ClassShadowbladeAssassin  = "shadowblade_assassin"
	ClassDemonHunter          = "demon_hunter"
	ClassVengeanceDemonHunter = "vengeance_demon_hunter"
	ClassFelbladeDemonHunter  = "felblade_demon_hunter"
)

// Character is the flattened class hierarchy: one row per character with a
// class tag, class-specific attributes held in nullable columns.
type Character struct {
	ID          string `db:"id"`
	Name        string `db:"name"`
	Description string `db:"description"`
	Class       string `db:"class"`

	ElementalPower         *string `db:"elemental_power"`
	SpellbookType          *string `db:"spellbook_type"`
	TimeMagicMastery       *string `db:"time_magic_mastery"`
	RaiseDeadAbility       *string `db:"raise_dead_ability"`
	WeaponType             *string `db:"weapon_type"`
	AssassinationTechnique *string `db:"assassination_technique"`
	VenomousStrikesMastery *string `db:"venomous_strikes_mastery"`
	VenomousBiteAbility    *string `db:"venomous_bite_ability"`
	ShadowstepAbility      *string `db:"shadowstep_ability"`
	DemonSlayingAbility    *string `db:"demon_slaying_ability"`
	VengeanceMastery       *string `db:"vengeance_mastery"`
	RetributionAbility     *string `db:"retribution_ability"`
	FelbladeAbility        *string `db:"felblade_ability"`

	model.Metadata
}

// classAttributes maps every class to the attribute columns it must carry.
// Specialized classes inherit the requirements of their base class.
var classAttributes = map[string][]string{
	ClassMage:                 {FieldElementalPower, FieldSpellbookType},
	ClassTimeMage:             {FieldElementalPower, FieldSpellbookType, FieldTimeMagicMastery},
	ClassNecromancer:          {FieldElementalPower, FieldSpellbookType, FieldRaiseDeadAbility},
	ClassAssassin:             {FieldWeaponType, FieldAssassinationTechnique},
	ClassViperAssassin:        {FieldWeaponType, FieldAssassinationTechnique, FieldVenomousStrikesMastery, FieldVenomousBiteAbility},
	ClassShadowbladeAssassin:  {FieldWeaponType, FieldAssassinationTechnique, FieldShadowstepAbility},
	ClassDemonHunter:          {FieldWeaponType, FieldDemonSlayingAbility},
	ClassVengeanceDemonHunter: {FieldWeaponType, FieldDemonSlayingAbility, FieldVengeanceMastery, FieldRetributionAbility},
	ClassFelbladeDemonHunter:  {FieldWeaponType, FieldDemonSlayingAbility, FieldFelbladeAbility},
}

// RequiredAttributes returns the attribute columns a class must provide.
// The second return is false for an unknown class.
func RequiredAttributes(class string) ([]string, bool) {
	attrs, ok := classAttributes[class]

	return attrs, ok
}

// Attribute returns the value of a class attribute column by name.
func (c *Character) Attribute(field string) *string {
	switch field {
	case FieldElementalPower:
		return c.ElementalPower
	case FieldSpellbookType:
		return c.SpellbookType
	case FieldTimeMagicMastery:
		return c.TimeMagicMastery
	case FieldRaiseDeadAbility:
		return c.RaiseDeadAbility
	case FieldWeaponType:
		return c.WeaponType
	case FieldAssassinationTechnique:
		return c.AssassinationTechnique
	case FieldVenomousStrikesMastery:
		return c.VenomousStrikesMastery
	case FieldVenomousBiteAbility:
		return c.VenomousBiteAbility
	case FieldShadowstepAbility:
		return c.ShadowstepAbility
	case FieldDemonSlayingAbility:
		return c.DemonSlayingAbility
	case FieldVengeanceMastery:
		return c.VengeanceMastery
	case FieldRetributionAbility:
		return c.RetributionAbility
	case FieldFelbladeAbility:
		return c.FelbladeAbility
	default:
		return nil
	}
}

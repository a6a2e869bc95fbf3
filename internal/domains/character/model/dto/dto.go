package dto

import (
	"github.com/google/uuid"

	"innkeep/internal/domains/character/model"
	"innkeep/shared"
	gDto "innkeep/shared/dto"
	gModel "innkeep/shared/model"
	"innkeep/shared/timezone"
)

type CreateCharacterRequest struct {
	Name        string `json:"name"        validate:"required,max=100"`
	Description string `json:"description" validate:"omitempty,max=1000"`
	Class       string `json:"class"       validate:"required,oneof=mage time_mage necromancer assassin viper_assassin shadowblade_assassin demon_hunter vengeance_demon_hunter felblade_demon_hunter"`

	ElementalPower         *string `json:"elemental_power,omitempty"          validate:"omitempty,max=100"`
	SpellbookType          *string `json:"spellbook_type,omitempty"           validate:"omitempty,max=100"`
	TimeMagicMastery       *string `json:"time_magic_mastery,omitempty"       validate:"omitempty,max=100"`
	RaiseDeadAbility       *string `json:"raise_dead_ability,omitempty"       validate:"omitempty,max=100"`
	WeaponType             *string `json:"weapon_type,omitempty"              validate:"omitempty,max=100"`
	AssassinationTechnique *string `json:"assassination_technique,omitempty"  validate:"omitempty,max=100"`
	VenomousStrikesMastery *string `json:"venomous_strikes_mastery,omitempty" validate:"omitempty,max=100"`
	VenomousBiteAbility    *string `json:"venomous_bite_ability,omitempty"    validate:"omitempty,max=100"`
	ShadowstepAbility      *string `json:"shadowstep_ability,omitempty"       validate:"omitempty,max=100"`
	DemonSlayingAbility    *string `json:"demon_slaying_ability,omitempty"    validate:"omitempty,max=100"`
	VengeanceMastery       *string `json:"vengeance_mastery,omitempty"        validate:"omitempty,max=100"`
	RetributionAbility     *string `json:"retribution_ability,omitempty"      validate:"omitempty,max=100"`
	FelbladeAbility        *string `json:"felblade_ability,omitempty"         validate:"omitempty,max=100"`
}

func (c *CreateCharacterRequest) ToModel(user string) model.Character {
	return model.Character{
		ID:          uuid.NewString(),
		Name:        c.Name,
		Description: c.Description,
		Class:       c.Class,

		ElementalPower:         c.ElementalPower,
		SpellbookType:          c.SpellbookType,
		TimeMagicMastery:       c.TimeMagicMastery,
		RaiseDeadAbility:       c.RaiseDeadAbility,
		WeaponType:             c.WeaponType,
		AssassinationTechnique: c.AssassinationTechnique,
		VenomousStrikesMastery: c.VenomousStrikesMastery,
		VenomousBiteAbility:    c.VenomousBiteAbility,
		ShadowstepAbility:      c.ShadowstepAbility,
		DemonSlayingAbility:    c.DemonSlayingAbility,
		VengeanceMastery:       c.VengeanceMastery,
		RetributionAbility:     c.RetributionAbility,
		FelbladeAbility:        c.FelbladeAbility,

		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateCharacterRequest struct {
	Name        string `db:"name"        json:"name"        validate:"omitempty,max=100"`
	Description string `db:"description" json:"description" validate:"omitempty,max=1000"`

	ElementalPower         *string `db:"elemental_power"          json:"elemental_power,omitempty"          validate:"omitempty,max=100"`
	SpellbookType          *string `db:"spellbook_type"           json:"spellbook_type,omitempty"           validate:"omitempty,max=100"`
	TimeMagicMastery       *string `db:"time_magic_mastery"       json:"time_magic_mastery,omitempty"       validate:"omitempty,max=100"`
	RaiseDeadAbility       *string `db:"raise_dead_ability"       json:"raise_dead_ability,omitempty"       validate:"omitempty,max=100"`
	WeaponType             *string `db:"weapon_type"              json:"weapon_type,omitempty"              validate:"omitempty,max=100"`
	AssassinationTechnique *string `db:"assassination_technique"  json:"assassination_technique,omitempty"  validate:"omitempty,max=100"`
	VenomousStrikesMastery *string `db:"venomous_strikes_mastery" json:"venomous_strikes_mastery,omitempty" validate:"omitempty,max=100"`
	VenomousBiteAbility    *string `db:"venomous_bite_ability"    json:"venomous_bite_ability,omitempty"    validate:"omitempty,max=100"`
	ShadowstepAbility      *string `db:"shadowstep_ability"       json:"shadowstep_ability,omitempty"       validate:"omitempty,max=100"`
	DemonSlayingAbility    *string `db:"demon_slaying_ability"    json:"demon_slaying_ability,omitempty"    validate:"omitempty,max=100"`
	VengeanceMastery       *string `db:"vengeance_mastery"        json:"vengeance_mastery,omitempty"        validate:"omitempty,max=100"`
	RetributionAbility     *string `db:"retribution_ability"      json:"retribution_ability,omitempty"      validate:"omitempty,max=100"`
	FelbladeAbility        *string `db:"felblade_ability"         json:"felblade_ability,omitempty"         validate:"omitempty,max=100"`
}

type CharacterResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Class       string `json:"class"`

	ElementalPower         *string `json:"elemental_power,omitempty"`
	SpellbookType          *string `json:"spellbook_type,omitempty"`
	TimeMagicMastery       *string `json:"time_magic_mastery,omitempty"`
	RaiseDeadAbility       *string `json:"raise_dead_ability,omitempty"`
	WeaponType             *string `json:"weapon_type,omitempty"`
	AssassinationTechnique *string `json:"assassination_technique,omitempty"`
	VenomousStrikesMastery *string `json:"venomous_strikes_mastery,omitempty"`
	VenomousBiteAbility    *string `json:"venomous_bite_ability,omitempty"`
	ShadowstepAbility      *string `json:"shadowstep_ability,omitempty"`
	DemonSlayingAbility    *string `json:"demon_slaying_ability,omitempty"`
	VengeanceMastery       *string `json:"vengeance_mastery,omitempty"`
	RetributionAbility     *string `json:"retribution_ability,omitempty"`
	FelbladeAbility        *string `json:"felblade_ability,omitempty"`

	gDto.Metadata
}

func (r *CharacterResponse) FromModel(model model.Character) {
	r.ID = model.ID
	r.Name = model.Name
	r.Description = model.Description
	r.Class = model.Class

	r.ElementalPower = model.ElementalPower
	r.SpellbookType = model.SpellbookType
	r.TimeMagicMastery = model.TimeMagicMastery
	r.RaiseDeadAbility = model.RaiseDeadAbility
	r.WeaponType = model.WeaponType
	r.AssassinationTechnique = model.AssassinationTechnique
	r.VenomousStrikesMastery = model.VenomousStrikesMastery
	r.VenomousBiteAbility = model.VenomousBiteAbility
	r.ShadowstepAbility = model.ShadowstepAbility
	r.DemonSlayingAbility = model.DemonSlayingAbility
	r.VengeanceMastery = model.VengeanceMastery
	r.RetributionAbility = model.RetributionAbility
	r.FelbladeAbility = model.FelbladeAbility

	r.Metadata.FromModel(model.Metadata)
}

type GetCharactersResponse struct {
	Characters []CharacterResponse `json:"characters"`
	TotalPage  int                 `json:"total_page"`
	TotalData  int                 `json:"total_data"`
}

func (r *GetCharactersResponse) FromModels(models []model.Character, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Characters = make([]CharacterResponse, len(models))
	for i, mod := range models {
		r.Characters[i].FromModel(mod)
	}
}

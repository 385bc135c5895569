package item

import "fmt"

// Rarity is an item's quality tier.
type Rarity int

const (
	RarityNormal Rarity = iota
	RarityMagic
	RarityRare
	RarityUnique
)

// String returns the display label for r.
func (r Rarity) String() string {
	switch r {
	case RarityNormal:
		return "Normal"
	case RarityMagic:
		return "Magic"
	case RarityRare:
		return "Rare"
	case RarityUnique:
		return "Unique"
	}
	return fmt.Sprintf("Rarity(%d)", int(r))
}

// ParseRarity returns the Rarity named by s ("normal", "magic", "rare", "unique").
// The empty string is RarityNormal.
func ParseRarity(s string) (Rarity, error) {
	switch s {
	case "", "normal":
		return RarityNormal, nil
	case "magic":
		return RarityMagic, nil
	case "rare":
		return RarityRare, nil
	case "unique":
		return RarityUnique, nil
	}
	return 0, fmt.Errorf("item: unknown rarity %q", s)
}

// EquipmentType is the broad equipment category of an item class.
type EquipmentType int

const (
	EquipmentNone EquipmentType = iota
	EquipmentArmour
	EquipmentWeapon
	EquipmentJewellery
)

// ArmourType enumerates armour bases.
type ArmourType int

const (
	Helmet ArmourType = iota
	BodyArmour
	Gloves
	Boots
	Shield
)

// WeaponType enumerates weapon bases.
type WeaponType int

const (
	Sword WeaponType = iota
	Dagger
	Axe
)

// JewelleryType enumerates jewellery bases.
type JewelleryType int

const (
	Belt JewelleryType = iota
	Ring
	Amulet
)

var armourLabels = map[ArmourType]string{
	Helmet:     "Helmet",
	BodyArmour: "Body Armour",
	Gloves:     "Gloves",
	Boots:      "Boots",
	Shield:     "Shield",
}

var weaponLabels = map[WeaponType]string{
	Sword:  "Sword",
	Dagger: "Dagger",
	Axe:    "Axe",
}

var jewelleryLabels = map[JewelleryType]string{
	Belt:   "Belt",
	Ring:   "Ring",
	Amulet: "Amulet",
}

// Class is an item's equipment category and subtype. The zero value is the
// unclassified class.
type Class struct {
	equipment EquipmentType
	subtype   int
}

// NoClass is the class of items that are not equipment.
var NoClass = Class{}

// ArmourClass returns the class for armour of type t.
func ArmourClass(t ArmourType) Class {
	return Class{equipment: EquipmentArmour, subtype: int(t)}
}

// WeaponClass returns the class for a weapon of type t.
func WeaponClass(t WeaponType) Class {
	return Class{equipment: EquipmentWeapon, subtype: int(t)}
}

// JewelleryClass returns the class for jewellery of type t.
func JewelleryClass(t JewelleryType) Class {
	return Class{equipment: EquipmentJewellery, subtype: int(t)}
}

// Equipment returns the broad category of c.
func (c Class) Equipment() EquipmentType {
	return c.equipment
}

// IsWeapon reports whether c is any weapon class.
func (c Class) IsWeapon() bool {
	return c.equipment == EquipmentWeapon
}

// String returns the subtype label, or "None" for an unclassified item.
func (c Class) String() string {
	switch c.equipment {
	case EquipmentArmour:
		return armourLabels[ArmourType(c.subtype)]
	case EquipmentWeapon:
		return weaponLabels[WeaponType(c.subtype)]
	case EquipmentJewellery:
		return jewelleryLabels[JewelleryType(c.subtype)]
	}
	return "None"
}

// classIDs maps content identifiers to classes. Subtype identifiers are
// unique across categories.
var classIDs = map[string]Class{
	"helmet":      ArmourClass(Helmet),
	"body_armour": ArmourClass(BodyArmour),
	"gloves":      ArmourClass(Gloves),
	"boots":       ArmourClass(Boots),
	"shield":      ArmourClass(Shield),
	"sword":       WeaponClass(Sword),
	"dagger":      WeaponClass(Dagger),
	"axe":         WeaponClass(Axe),
	"belt":        JewelleryClass(Belt),
	"ring":        JewelleryClass(Ring),
	"amulet":      JewelleryClass(Amulet),
}

// ParseClass returns the Class named by s, e.g. "sword" or "body_armour".
// The empty string and "none" are NoClass.
func ParseClass(s string) (Class, error) {
	if s == "" || s == "none" {
		return NoClass, nil
	}
	c, ok := classIDs[s]
	if !ok {
		return NoClass, fmt.Errorf("item: unknown class %q", s)
	}
	return c, nil
}

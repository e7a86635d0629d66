package equipment

// StandardCatalog returns the common Inner Sphere and Clan weapons with
// their tabletop stats. The slice is freshly allocated on every call.
func StandardCatalog() []Descriptor {
	return []Descriptor{
		// Energy
		{InternalName: "ISSmallLaser", Name: "Small Laser", Type: "energy", Damage: 3, Heat: 1, ShortRange: 1, MediumRange: 2, LongRange: 3, Tonnage: 0.5, CriticalSlots: 1},
		{InternalName: "ISMediumLaser", Name: "Medium Laser", Type: "energy", Damage: 5, Heat: 3, ShortRange: 3, MediumRange: 6, LongRange: 9, Tonnage: 1, CriticalSlots: 1},
		{InternalName: "ISLargeLaser", Name: "Large Laser", Type: "energy", Damage: 8, Heat: 8, ShortRange: 5, MediumRange: 10, LongRange: 15, Tonnage: 5, CriticalSlots: 2},
		{InternalName: "ISERLargeLaser", Name: "ER Large Laser", Type: "energy", Damage: 8, Heat: 12, ShortRange: 7, MediumRange: 14, LongRange: 19, Tonnage: 5, CriticalSlots: 2},
		{InternalName: "ISPPC", Name: "PPC", Type: "energy", Damage: 10, Heat: 10, MinRange: 3, ShortRange: 6, MediumRange: 12, LongRange: 18, Tonnage: 7, CriticalSlots: 3},
		{InternalName: "CLERMediumLaser", Name: "ER Medium Laser (Clan)", Type: "energy", Damage: 7, Heat: 5, ShortRange: 5, MediumRange: 10, LongRange: 15, Tonnage: 1, CriticalSlots: 1},

		// Ballistic
		{InternalName: "ISMachine Gun", Name: "Machine Gun", Type: "ballistic", Damage: 2, ShortRange: 1, MediumRange: 2, LongRange: 3, Tonnage: 0.5, CriticalSlots: 1},
		{InternalName: "ISAC5", Name: "AC/5", LookupNames: []string{"Autocannon/5"}, Type: "ballistic", Damage: 5, Heat: 1, MinRange: 3, ShortRange: 6, MediumRange: 12, LongRange: 18, Tonnage: 8, CriticalSlots: 4},
		{InternalName: "ISAC10", Name: "AC/10", LookupNames: []string{"Autocannon/10"}, Type: "ballistic", Damage: 10, Heat: 3, ShortRange: 5, MediumRange: 10, LongRange: 15, Tonnage: 12, CriticalSlots: 7},
		{InternalName: "ISAC20", Name: "AC/20", LookupNames: []string{"Autocannon/20"}, Type: "ballistic", Damage: 20, Heat: 7, ShortRange: 3, MediumRange: 6, LongRange: 9, Tonnage: 14, CriticalSlots: 10},
		{InternalName: "ISGaussRifle", Name: "Gauss Rifle", Type: "ballistic", Damage: 15, Heat: 1, MinRange: 2, ShortRange: 7, MediumRange: 15, LongRange: 22, Tonnage: 15, CriticalSlots: 7},
		{InternalName: "ISUltraAC2", Name: "Ultra AC/2", Type: "ballistic", Damage: 2, Heat: 1, MinRange: 3, ShortRange: 8, MediumRange: 17, LongRange: 25, Tonnage: 7, CriticalSlots: 3},
		{InternalName: "ISUltraAC5", Name: "Ultra AC/5", Type: "ballistic", Damage: 5, Heat: 1, MinRange: 2, ShortRange: 6, MediumRange: 13, LongRange: 20, Tonnage: 9, CriticalSlots: 5},
		{InternalName: "ISUltraAC10", Name: "Ultra AC/10", Type: "ballistic", Damage: 10, Heat: 4, ShortRange: 6, MediumRange: 12, LongRange: 18, Tonnage: 13, CriticalSlots: 7},
		{InternalName: "ISUltraAC20", Name: "Ultra AC/20", Type: "ballistic", Damage: 20, Heat: 8, MinRange: 2, ShortRange: 3, MediumRange: 7, LongRange: 10, Tonnage: 15, CriticalSlots: 10},
		{InternalName: "CLUltraAC10", Name: "Ultra AC/10 (Clan)", Type: "ballistic", Damage: 10, Heat: 3, ShortRange: 6, MediumRange: 12, LongRange: 18, Tonnage: 10, CriticalSlots: 4},
		{InternalName: "ISRotaryAC2", Name: "Rotary AC/2", Type: "ballistic", Damage: 2, Heat: 1, ShortRange: 6, MediumRange: 12, LongRange: 18, Tonnage: 8, CriticalSlots: 3},
		{InternalName: "ISRotaryAC5", Name: "Rotary AC/5", Type: "ballistic", Damage: 5, Heat: 1, ShortRange: 5, MediumRange: 10, LongRange: 15, Tonnage: 10, CriticalSlots: 6},
		{InternalName: "ISLBXAC2", Name: "LB 2-X AC", Type: "ballistic", Damage: 2, RackSize: 2, Heat: 1, MinRange: 4, ShortRange: 9, MediumRange: 18, LongRange: 27, Tonnage: 6, CriticalSlots: 4},
		{InternalName: "ISLBXAC5", Name: "LB 5-X AC", Type: "ballistic", Damage: 5, RackSize: 5, Heat: 1, MinRange: 3, ShortRange: 7, MediumRange: 14, LongRange: 21, Tonnage: 8, CriticalSlots: 5},
		{InternalName: "ISLBXAC10", Name: "LB 10-X AC", Type: "ballistic", Damage: 10, RackSize: 10, Heat: 2, ShortRange: 6, MediumRange: 12, LongRange: 18, Tonnage: 11, CriticalSlots: 6},
		{InternalName: "ISLBXAC20", Name: "LB 20-X AC", Type: "ballistic", Damage: 20, RackSize: 20, Heat: 6, MinRange: 2, ShortRange: 4, MediumRange: 8, LongRange: 12, Tonnage: 14, CriticalSlots: 11},

		// Missile
		{InternalName: "ISLRM5", Name: "LRM 5", Type: "missile", RackSize: 5, Heat: 2, MinRange: 6, ShortRange: 7, MediumRange: 14, LongRange: 21, Tonnage: 2, CriticalSlots: 1},
		{InternalName: "ISLRM10", Name: "LRM 10", Type: "missile", RackSize: 10, Heat: 4, MinRange: 6, ShortRange: 7, MediumRange: 14, LongRange: 21, Tonnage: 5, CriticalSlots: 2},
		{InternalName: "ISLRM15", Name: "LRM 15", Type: "missile", RackSize: 15, Heat: 5, MinRange: 6, ShortRange: 7, MediumRange: 14, LongRange: 21, Tonnage: 7, CriticalSlots: 3},
		{InternalName: "ISLRM20", Name: "LRM 20", Type: "missile", RackSize: 20, Heat: 6, MinRange: 6, ShortRange: 7, MediumRange: 14, LongRange: 21, Tonnage: 10, CriticalSlots: 5},
		{InternalName: "CLLRM15", Name: "LRM 15 (Clan)", Type: "missile", RackSize: 15, Heat: 5, ShortRange: 7, MediumRange: 14, LongRange: 21, Tonnage: 3.5, CriticalSlots: 2},
		{InternalName: "ISSRM2", Name: "SRM 2", Type: "missile", RackSize: 2, Heat: 2, ShortRange: 3, MediumRange: 6, LongRange: 9, Tonnage: 1, CriticalSlots: 1},
		{InternalName: "ISSRM4", Name: "SRM 4", Type: "missile", RackSize: 4, Heat: 3, ShortRange: 3, MediumRange: 6, LongRange: 9, Tonnage: 2, CriticalSlots: 1},
		{InternalName: "ISSRM6", Name: "SRM 6", Type: "missile", RackSize: 6, Heat: 4, ShortRange: 3, MediumRange: 6, LongRange: 9, Tonnage: 3, CriticalSlots: 2},
		{InternalName: "ISStreakSRM2", Name: "Streak SRM 2", Type: "missile", RackSize: 2, Heat: 2, ShortRange: 3, MediumRange: 6, LongRange: 9, Tonnage: 1.5, CriticalSlots: 1},
		{InternalName: "ISStreakSRM4", Name: "Streak SRM 4", Type: "missile", RackSize: 4, Heat: 3, ShortRange: 3, MediumRange: 6, LongRange: 9, Tonnage: 3, CriticalSlots: 1},
		{InternalName: "ISStreakSRM6", Name: "Streak SRM 6", Type: "missile", RackSize: 6, Heat: 4, ShortRange: 3, MediumRange: 6, LongRange: 9, Tonnage: 4.5, CriticalSlots: 2},
		{InternalName: "CLStreakSRM6", Name: "Streak SRM 6 (Clan)", Type: "missile", RackSize: 6, Heat: 4, ShortRange: 4, MediumRange: 8, LongRange: 12, Tonnage: 3, CriticalSlots: 2},
		{InternalName: "CLStreakLRM15", Name: "Streak LRM 15", Type: "missile", RackSize: 15, Heat: 5, ShortRange: 7, MediumRange: 14, LongRange: 21, Tonnage: 7.5, CriticalSlots: 3},
		{InternalName: "ISMRM10", Name: "MRM 10", Type: "missile", RackSize: 10, Heat: 4, ShortRange: 3, MediumRange: 8, LongRange: 15, Tonnage: 3, CriticalSlots: 2},
		{InternalName: "ISMRM20", Name: "MRM 20", Type: "missile", RackSize: 20, Heat: 6, ShortRange: 3, MediumRange: 8, LongRange: 15, Tonnage: 7, CriticalSlots: 3},
		{InternalName: "ISMRM30", Name: "MRM 30", Type: "missile", RackSize: 30, Heat: 10, ShortRange: 3, MediumRange: 8, LongRange: 15, Tonnage: 10, CriticalSlots: 5},
		{InternalName: "ISMRM40", Name: "MRM 40", Type: "missile", RackSize: 40, Heat: 12, ShortRange: 3, MediumRange: 8, LongRange: 15, Tonnage: 12, CriticalSlots: 7},

		// Defensive
		{InternalName: "ISAntiMissileSystem", Name: "Anti-Missile System", LookupNames: []string{"AMS", "ISAMS"}, Type: "other", Heat: 1, Tonnage: 0.5, CriticalSlots: 1},
	}
}

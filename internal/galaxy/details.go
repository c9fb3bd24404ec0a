package galaxy

// Detail payloads bundle a record with its resolved relatives, which is
// what the viewer's detail panel renders. Parents resolve through the
// dual-path lookup in Parent; children through prefix scans. A nil
// parent or empty child list means the relative genuinely is not in
// the dataset.

type SectorDetails struct {
	Sector     Record
	Subsectors []Record
}

type SubsectorDetails struct {
	Subsector Record
	Sector    Record
	Systems   []Record
}

type SystemDetails struct {
	System    Record
	Subsector Record
	Planets   []Record
}

type PlanetDetails struct {
	Planet Record
	System Record
}

// SectorDetails returns a sector with its subsectors, nil if the id is
// unknown.
func (r *Repository) SectorDetails(id int) *SectorDetails {
	sector := r.GetByID(LevelSector, id)
	if sector == nil {
		return nil
	}
	return &SectorDetails{
		Sector:     sector,
		Subsectors: r.Children(LevelSubsector, sector.Location()),
	}
}

// SubsectorDetails returns a subsector with its parent sector and child
// systems, nil if the id is unknown.
func (r *Repository) SubsectorDetails(id int) *SubsectorDetails {
	subsector := r.GetByID(LevelSubsector, id)
	if subsector == nil {
		return nil
	}
	return &SubsectorDetails{
		Subsector: subsector,
		Sector:    r.Parent(subsector, LevelSector),
		Systems:   r.Children(LevelSystem, subsector.Location()),
	}
}

// SystemDetails returns a system with its parent subsector and child
// planets, nil if the id is unknown.
func (r *Repository) SystemDetails(id int) *SystemDetails {
	system := r.GetByID(LevelSystem, id)
	if system == nil {
		return nil
	}
	return &SystemDetails{
		System:    system,
		Subsector: r.Parent(system, LevelSubsector),
		Planets:   r.Children(LevelPlanet, system.Location()),
	}
}

// PlanetDetails returns a planet with its parent system, nil if the id
// is unknown.
func (r *Repository) PlanetDetails(id int) *PlanetDetails {
	planet := r.GetByID(LevelPlanet, id)
	if planet == nil {
		return nil
	}
	return &PlanetDetails{
		Planet: planet,
		System: r.Parent(planet, LevelSystem),
	}
}

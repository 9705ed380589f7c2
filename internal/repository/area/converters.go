package area

import "parcelnet/internal/entities"

func ToDomain(a *AreaDB) *entities.Area {
	if a == nil {
		return nil
	}
	return &entities.Area{
		ID:             a.ID,
		Name:           a.Name,
		NormalizedName: a.NormalizedName,
		Code:           a.Code,
		Pincode:        a.Pincode,
		District:       a.District,
		Zone:           a.Zone,
		IsActive:       a.IsActive,
		CreatedAt:      a.CreatedAt,
	}
}

func FromDomainModify(areaModify *entities.AreaModify) *AreaModifyDB {
	if areaModify == nil {
		return nil
	}
	areaDB := &AreaModifyDB{}

	if areaModify.ID != nil {
		areaDB.ID = areaModify.ID
	}
	if areaModify.Name != nil {
		areaDB.Name = areaModify.Name
	}
	if areaModify.NormalizedName != nil {
		areaDB.NormalizedName = areaModify.NormalizedName
	}
	if areaModify.Code != nil {
		areaDB.Code = areaModify.Code
	}
	if areaModify.Pincode != nil {
		areaDB.Pincode = areaModify.Pincode
	}
	if areaModify.District != nil {
		areaDB.District = areaModify.District
	}
	if areaModify.Zone != nil {
		areaDB.Zone = areaModify.Zone
	}
	if areaModify.IsActive != nil {
		areaDB.IsActive = areaModify.IsActive
	}

	return areaDB
}

func ToDomainList(areasDB []AreaDB) []entities.Area {
	if len(areasDB) == 0 {
		return []entities.Area{}
	}

	result := make([]entities.Area, len(areasDB))
	for i, areaDB := range areasDB {
		result[i] = *ToDomain(&areaDB)
	}
	return result
}

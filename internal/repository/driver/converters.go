package driver

import "parcelnet/internal/entities"

func ToDomain(d *DriverDB) *entities.Driver {
	if d == nil {
		return nil
	}
	return &entities.Driver{
		ID:        d.ID,
		Name:      d.Name,
		Mobile:    d.Mobile,
		UserID:    d.UserID,
		District:  d.District,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

func FromDomainModify(driverModify *entities.DriverModify) *DriverModifyDB {
	if driverModify == nil {
		return nil
	}
	driverDB := &DriverModifyDB{}

	if driverModify.ID != nil {
		driverDB.ID = driverModify.ID
	}
	if driverModify.Name != nil {
		driverDB.Name = driverModify.Name
	}
	if driverModify.Mobile != nil {
		driverDB.Mobile = driverModify.Mobile
	}
	if driverModify.UserID != nil {
		driverDB.UserID = driverModify.UserID
	}
	if driverModify.District != nil {
		driverDB.District = driverModify.District
	}

	return driverDB
}

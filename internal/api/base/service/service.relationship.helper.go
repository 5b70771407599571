package basesvc

import (
	"context"
	"fmt"
	"github.com/MHYAnate/sureshops-api/internal/common"
	"github.com/MHYAnate/sureshops-api/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RelationshipCheck dinh nghia mot quan he can kiem tra
type RelationshipCheck struct {
	CollectionName string
	FieldName      string
	ErrorMessage   string
	Optional       bool
}

// CheckRelationshipExists kiem tra co record nao trong collection khac dang tro toi record nay khong
func CheckRelationshipExists(ctx context.Context, recordID primitive.ObjectID, checks []RelationshipCheck) error {
	for _, check := range checks {
		collection, exists := global.RegistryCollections.Get(check.CollectionName)
		if !exists {
			if check.Optional {
				continue
			}
			return common.NewError(
				common.ErrCodeInternalServer,
				fmt.Sprintf("Khong tim thay collection '%s' de kiem tra quan he", check.CollectionName),
				common.StatusInternalServerError,
				nil,
			)
		}
		filter := bson.M{check.FieldName: recordID}
		count, err := collection.CountDocuments(ctx, filter)
		if err != nil {
			return common.ConvertMongoError(err)
		}
		if count > 0 {
			errorMsg := check.ErrorMessage
			if errorMsg == "" {
				errorMsg = fmt.Sprintf("Khong the xoa record vi co %d record trong collection '%s' dang tham chieu toi record nay", count, check.CollectionName)
			} else {
				errorMsg = fmt.Sprintf(check.ErrorMessage, count)
			}
			return common.NewError(common.ErrCodeBusinessOperation, errorMsg, common.StatusConflict, nil)
		}
	}
	return nil
}

// CheckRelationshipExistsWithFilter kiem tra quan he voi filter tuy chinh
func CheckRelationshipExistsWithFilter(ctx context.Context, filter bson.M, checks []RelationshipCheck) error {
	for _, check := range checks {
		collection, exists := global.RegistryCollections.Get(check.CollectionName)
		if !exists {
			if check.Optional {
				continue
			}
			return common.NewError(
				common.ErrCodeInternalServer,
				fmt.Sprintf("Khong tim thay collection '%s' de kiem tra quan he", check.CollectionName),
				common.StatusInternalServerError,
				nil,
			)
		}
		count, err := collection.CountDocuments(ctx, filter)
		if err != nil {
			return common.ConvertMongoError(err)
		}
		if count > 0 {
			errorMsg := check.ErrorMessage
			if errorMsg == "" {
				errorMsg = fmt.Sprintf("Khong the xoa record vi co %d record trong collection '%s' dang tham chieu toi record nay", count, check.CollectionName)
			} else {
				errorMsg = fmt.Sprintf(check.ErrorMessage, count)
			}
			return common.NewError(common.ErrCodeBusinessOperation, errorMsg, common.StatusConflict, nil)
		}
	}
	return nil
}

// GetRelationshipCount tra ve so luong record dang tham chieu toi record nay
func GetRelationshipCount(ctx context.Context, recordID primitive.ObjectID, collectionName, fieldName string) (int64, error) {
	collection, exists := global.RegistryCollections.Get(collectionName)
	if !exists {
		return 0, common.NewError(common.ErrCodeInternalServer, fmt.Sprintf("Khong tim thay collection '%s'", collectionName), common.StatusInternalServerError, nil)
	}
	filter := bson.M{fieldName: recordID}
	return collection.CountDocuments(ctx, filter)
}

// ValidateBeforeDeleteState kiem tra cac quan he cua State truoc khi xoa
func ValidateBeforeDeleteState(ctx context.Context, stateID primitive.ObjectID) error {
	checks := []RelationshipCheck{
		{CollectionName: global.MongoDB_ColNames.Areas, FieldName: "stateId", ErrorMessage: "Khong the xoa state vi co %d area truc thuoc. Vui long xoa cac area truoc."},
		{CollectionName: global.MongoDB_ColNames.Vendors, FieldName: "stateId", ErrorMessage: "Khong the xoa state vi co %d vendor dang hoat dong tai state nay."},
	}
	return CheckRelationshipExists(ctx, stateID, checks)
}

// ValidateBeforeDeleteArea kiem tra cac quan he cua Area truoc khi xoa
func ValidateBeforeDeleteArea(ctx context.Context, areaID primitive.ObjectID) error {
	checks := []RelationshipCheck{
		{CollectionName: global.MongoDB_ColNames.Markets, FieldName: "areaId", ErrorMessage: "Khong the xoa area vi co %d market truc thuoc. Vui long xoa cac market truoc."},
		{CollectionName: global.MongoDB_ColNames.Vendors, FieldName: "areaId", ErrorMessage: "Khong the xoa area vi co %d vendor dang hoat dong tai area nay."},
	}
	return CheckRelationshipExists(ctx, areaID, checks)
}

// ValidateBeforeDeleteMarket kiem tra cac quan he cua Market truoc khi xoa
func ValidateBeforeDeleteMarket(ctx context.Context, marketID primitive.ObjectID) error {
	checks := []RelationshipCheck{
		{CollectionName: global.MongoDB_ColNames.Vendors, FieldName: "marketId", ErrorMessage: "Khong the xoa market vi co %d vendor dang hoat dong tai market nay."},
	}
	return CheckRelationshipExists(ctx, marketID, checks)
}

// ValidateBeforeDeleteCatalogItem kiem tra cac quan he cua CatalogItem truoc khi xoa
func ValidateBeforeDeleteCatalogItem(ctx context.Context, catalogItemID primitive.ObjectID) error {
	checks := []RelationshipCheck{
		{CollectionName: global.MongoDB_ColNames.Products, FieldName: "catalogItemId", ErrorMessage: "Khong the xoa catalog item vi co %d product dang lien ket. Vui long go lien ket truoc."},
	}
	return CheckRelationshipExists(ctx, catalogItemID, checks)
}

// ValidateBeforeDeleteUser kiem tra cac quan he cua User truoc khi xoa
func ValidateBeforeDeleteUser(ctx context.Context, userID primitive.ObjectID) error {
	checks := []RelationshipCheck{
		{CollectionName: global.MongoDB_ColNames.Vendors, FieldName: "userId", ErrorMessage: "Khong the xoa user vi user dang so huu %d shop. Vui long xoa shop truoc."},
	}
	return CheckRelationshipExists(ctx, userID, checks)
}

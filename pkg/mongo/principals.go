package mongo

import (
	"context"
	"fmt"

	"github.com/merabazaar/ecommerce-api/pkg/models"
)

// ResolvePrincipal looks a session identity up against exactly the principal
// store named by its kind tag.
func ResolvePrincipal(ctx context.Context, kind, id string) (*models.Principal, error) {
	switch kind {
	case models.RoleUser:
		user, err := FindUserByUserID(ctx, id)
		if err != nil {
			return nil, err
		}
		return &models.Principal{Kind: kind, ID: user.UserID, Name: user.Name, Email: user.Email, Role: user.Role}, nil
	case models.RoleSeller:
		seller, err := FindSellerBySellerID(ctx, id)
		if err != nil {
			return nil, err
		}
		return &models.Principal{Kind: kind, ID: seller.SellerID, Name: seller.Name, Email: seller.Email, Role: seller.Role}, nil
	case models.RoleAdmin:
		admin, err := FindAdminByID(ctx, id)
		if err != nil {
			return nil, err
		}
		return &models.Principal{Kind: kind, ID: admin.ID.Hex(), Name: admin.Name, Email: admin.Email, Role: admin.Role}, nil
	default:
		return nil, fmt.Errorf("unknown principal kind %q", kind)
	}
}

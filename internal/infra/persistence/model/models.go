package model

// All lists every table mapping in dependency order, for migrations and code generation.
func All() []any {
	return []any{
		&UserModel{},
		&ProfileModel{},
		&OfferModel{},
		&OfferDetailModel{},
		&OrderModel{},
		&ReviewModel{},
	}
}

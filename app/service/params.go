package service

import "github.com/vibast-solutions/node-go-pinelabs/app/types"

// decodeAddress reads one fixed address collection
// ({"address": {address1..., pincode..., ...}}) into an Address value.
// Returns nil when the collection or its address entry is absent.
func decodeAddress(collection types.Parameters) *types.Address {
	if collection == nil {
		return nil
	}
	fields := collection.Map("address")
	if fields == nil {
		return nil
	}
	return &types.Address{
		Address1: fields.String("address1", ""),
		Address2: fields.String("address2", ""),
		Address3: fields.String("address3", ""),
		Pincode:  fields.String("pincode", ""),
		City:     fields.String("city", ""),
		State:    fields.String("state", ""),
		Country:  fields.String("country", ""),
	}
}

// decodeMetadata reads the repeated key/value metadata collection
// ({"metadata": [{key, value}, ...]}), preserving input order.
func decodeMetadata(collection types.Parameters) []types.MetadataItem {
	if collection == nil {
		return nil
	}
	entries := collection.Slice("metadata")
	if len(entries) == 0 {
		return nil
	}
	items := make([]types.MetadataItem, 0, len(entries))
	for _, entry := range entries {
		items = append(items, types.MetadataItem{
			Key:   entry.String("key", ""),
			Value: entry.String("value", ""),
		})
	}
	return items
}

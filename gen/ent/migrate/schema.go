// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// CatalogMachinesColumns holds the columns for the "catalog_machines" table.
	CatalogMachinesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "machine_type", Type: field.TypeString, Nullable: true},
		{Name: "spec_tokens", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "manufacturer_id", Type: field.TypeUUID},
	}
	// CatalogMachinesTable holds the schema information for the "catalog_machines" table.
	CatalogMachinesTable = &schema.Table{
		Name:       "catalog_machines",
		Columns:    CatalogMachinesColumns,
		PrimaryKey: []*schema.Column{CatalogMachinesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "catalog_machines_manufacturers_machines",
				Columns:    []*schema.Column{CatalogMachinesColumns[6]},
				RefColumns: []*schema.Column{ManufacturersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "catalogmachine_manufacturer_id_name",
				Unique:  false,
				Columns: []*schema.Column{CatalogMachinesColumns[6], CatalogMachinesColumns[1]},
			},
			{
				Name:    "catalogmachine_updated_at",
				Unique:  false,
				Columns: []*schema.Column{CatalogMachinesColumns[5]},
			},
		},
	}
	// DiscoveredURLColumns holds the columns for the "discovered_url" table.
	DiscoveredURLColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "url", Type: field.TypeString},
		{Name: "category", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeString, Default: "pending"},
		{Name: "discovered_at", Type: field.TypeTime},
		{Name: "scraped_at", Type: field.TypeTime, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "scraped_fields", Type: field.TypeJSON, Nullable: true},
		{Name: "duplicate_status", Type: field.TypeString, Default: "pending"},
		{Name: "existing_machine_id", Type: field.TypeUUID, Nullable: true},
		{Name: "similarity_score", Type: field.TypeFloat64, Nullable: true},
		{Name: "duplicate_reason", Type: field.TypeString, Nullable: true},
		{Name: "checked_at", Type: field.TypeTime, Nullable: true},
		{Name: "check_started_at", Type: field.TypeTime, Nullable: true},
		{Name: "ml_classification", Type: field.TypeString, Nullable: true},
		{Name: "ml_confidence", Type: field.TypeFloat64, Nullable: true},
		{Name: "ml_reason", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "machine_type", Type: field.TypeString, Nullable: true},
		{Name: "should_auto_skip", Type: field.TypeBool, Default: false},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "manufacturer_id", Type: field.TypeUUID},
	}
	// DiscoveredURLTable holds the schema information for the "discovered_url" table.
	DiscoveredURLTable = &schema.Table{
		Name:       "discovered_url",
		Columns:    DiscoveredURLColumns,
		PrimaryKey: []*schema.Column{DiscoveredURLColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "discovered_url_manufacturers_urls",
				Columns:    []*schema.Column{DiscoveredURLColumns[20]},
				RefColumns: []*schema.Column{ManufacturersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "discoveredurl_manufacturer_id_url",
				Unique:  true,
				Columns: []*schema.Column{DiscoveredURLColumns[20], DiscoveredURLColumns[1]},
			},
			{
				Name:    "discoveredurl_manufacturer_id_status",
				Unique:  false,
				Columns: []*schema.Column{DiscoveredURLColumns[20], DiscoveredURLColumns[3]},
			},
			{
				Name:    "discoveredurl_manufacturer_id_duplicate_status",
				Unique:  false,
				Columns: []*schema.Column{DiscoveredURLColumns[20], DiscoveredURLColumns[8]},
			},
			{
				Name:    "discoveredurl_discovered_at",
				Unique:  false,
				Columns: []*schema.Column{DiscoveredURLColumns[4]},
			},
		},
	}
	// ManufacturersColumns holds the columns for the "manufacturers" table.
	ManufacturersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString, Unique: true},
		{Name: "website", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ManufacturersTable holds the schema information for the "manufacturers" table.
	ManufacturersTable = &schema.Table{
		Name:       "manufacturers",
		Columns:    ManufacturersColumns,
		PrimaryKey: []*schema.Column{ManufacturersColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		CatalogMachinesTable,
		DiscoveredURLTable,
		ManufacturersTable,
	}
)

func init() {
	CatalogMachinesTable.ForeignKeys[0].RefTable = ManufacturersTable
	CatalogMachinesTable.Annotation = &entsql.Annotation{
		Table: "catalog_machines",
	}
	DiscoveredURLTable.ForeignKeys[0].RefTable = ManufacturersTable
	DiscoveredURLTable.Annotation = &entsql.Annotation{
		Table: "discovered_url",
	}
	ManufacturersTable.Annotation = &entsql.Annotation{
		Table: "manufacturers",
	}
}

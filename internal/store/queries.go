package store

// SQL query constants organized by entity.
// All SQL lives here; PostgresStore methods reference these constants.

const importColumns = `id, shop, ebay_item_id, source_url, title,
		price, currency, image_count, variant_count,
		COALESCE(shopify_product_id, ''), status, COALESCE(error_text, ''),
		last_synced_at, created_at, updated_at`

// Import history queries.
const (
	queryCreateImport = `
		INSERT INTO imports (
			shop, ebay_item_id, source_url, title,
			price, currency, image_count, variant_count,
			shopify_product_id, status, error_text,
			created_at, updated_at
		) VALUES (
			@shop, @ebay_item_id, @source_url, @title,
			@price, @currency, @image_count, @variant_count,
			@shopify_product_id, @status, @error_text,
			now(), now()
		)
		RETURNING id, created_at, updated_at`

	queryGetImport = `
		SELECT ` + importColumns + `
		FROM imports
		WHERE id = $1`

	queryUpdateImportResult = `
		UPDATE imports SET
			status = $2,
			shopify_product_id = $3,
			error_text = $4,
			updated_at = now()
		WHERE id = $1`

	queryMarkImportSynced = `
		UPDATE imports SET
			price = $2,
			last_synced_at = $3,
			updated_at = now()
		WHERE id = $1`

	queryListSyncableImports = `
		SELECT ` + importColumns + `
		FROM imports
		WHERE shop = $1
			AND status = 'success'
			AND shopify_product_id IS NOT NULL
			AND shopify_product_id <> ''
			AND (last_synced_at IS NULL OR last_synced_at < $2)
		ORDER BY last_synced_at ASC NULLS FIRST
		LIMIT $3`

	queryDeleteImport = `
		DELETE FROM imports WHERE id = $1`

	queryDeleteImports = `
		DELETE FROM imports WHERE id = ANY($1)`

	baseImportsSelect = `
		SELECT ` + importColumns + `
		FROM imports`

	countImportsSelect = `
		SELECT COUNT(*) FROM imports`
)

// Shop settings queries.
const (
	queryUpsertSettings = `
		INSERT INTO shop_settings (
			shop, pricing, default_status, import_images, import_variants,
			created_at, updated_at
		) VALUES (
			@shop, @pricing, @default_status, @import_images, @import_variants,
			now(), now()
		)
		ON CONFLICT (shop) DO UPDATE SET
			pricing = EXCLUDED.pricing,
			default_status = EXCLUDED.default_status,
			import_images = EXCLUDED.import_images,
			import_variants = EXCLUDED.import_variants,
			updated_at = now()
		RETURNING created_at, updated_at`

	queryGetSettings = `
		SELECT shop, pricing, default_status, import_images, import_variants,
			created_at, updated_at
		FROM shop_settings
		WHERE shop = $1`
)

package http

// ListProducts godoc
// @Summary List catalog products
// @Description Get a list of products with on-hand stock and production rate
// @Tags Catalog
// @Produce json
// @Param limit query int false "Limit"
// @Param offset query int false "Offset"
// @Success 200 {object} object{success=bool,data=array}
// @Router /api/products [get]
func (h *ProductHandler) ListProductsDoc() {}

// GetCatalogStats godoc
// @Summary Catalog totals
// @Description Total SKUs, on-hand cases and combined daily production rate
// @Tags Catalog
// @Produce json
// @Success 200 {object} object{success=bool,data=object{total_products=int,total_on_hand_cases=int,total_daily_rate=number}}
// @Router /api/products/stats [get]
func (h *ProductHandler) GetCatalogStatsDoc() {}

// GetProductBySKU godoc
// @Summary Get a product by SKU
// @Description Get a single product with its inventory snapshot
// @Tags Catalog
// @Produce json
// @Param sku path string true "Product SKU"
// @Success 200 {object} object{success=bool,data=object}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/products/sku/{sku} [get]
func (h *ProductHandler) GetProductBySKUDoc() {}

// CreateProduct godoc
// @Summary Register a new SKU
// @Description Create a product with initial on-hand stock and production rate (Admin only)
// @Tags Catalog
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body object{sku=string,name=string,description=string,on_hand=int,production_rate=number} true "Product data"
// @Success 201 {object} object{success=bool,message=string,data=object}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 403 {object} object{success=bool,error=string}
// @Router /api/products [post]
func (h *ProductHandler) CreateProductDoc() {}

// ReceiveStock godoc
// @Summary Record the current on-hand quantity
// @Description Set the on-hand case count reported by the warehouse (Admin only)
// @Tags Catalog
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param request body object{on_hand=int} true "On-hand cases"
// @Success 200 {object} object{success=bool,message=string}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/products/{id}/stock [patch]
func (h *ProductHandler) ReceiveStockDoc() {}

// SetProductionRate godoc
// @Summary Set the daily production rate
// @Description Update cases-per-day production capacity for a product (Admin only)
// @Tags Catalog
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param request body object{production_rate=number} true "Cases per day"
// @Success 200 {object} object{success=bool,message=string}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/products/{id}/rate [patch]
func (h *ProductHandler) SetProductionRateDoc() {}

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ProductsCreated counts products created through the admin API.
	ProductsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "shopadmin_products_created_total",
		Help: "The total number of products created",
	})

	// ProductsUpdated counts product updates through the admin API.
	ProductsUpdated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "shopadmin_products_updated_total",
		Help: "The total number of products updated",
	})

	// ProductsDeleted counts products deleted through the admin API.
	ProductsDeleted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "shopadmin_products_deleted_total",
		Help: "The total number of products deleted",
	})

	// ImagesUploaded counts image files stored by the upload middleware.
	ImagesUploaded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "shopadmin_images_uploaded_total",
		Help: "The total number of product images stored",
	})
)

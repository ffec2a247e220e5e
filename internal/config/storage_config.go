package config

// StorageConfig defines where deliveries are journaled
type StorageConfig struct {
	DeliveryDBPath   string `json:"delivery_db_path,omitempty" yaml:"delivery_db_path,omitempty" env:"DISCORDMSG_DELIVERY_DB" validate:"required_if=RecordDeliveries true"`
	RecordDeliveries bool   `json:"record_deliveries" yaml:"record_deliveries" env:"DISCORDMSG_RECORD_DELIVERIES"`
}

// NewDefaultStorageConfig creates default storage configuration
func NewDefaultStorageConfig() StorageConfig {
	return StorageConfig{
		DeliveryDBPath:   DefaultStorageDeliveryDBPath,
		RecordDeliveries: true,
	}
}

package game

import (
	"fmt"
	"math"

	"github.com/decker502/rangeslider/pkg/utils"
	"github.com/quasilyte/gdata/v2"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// 存储路径常量
const (
	rangeObject   = "range"
	rangeProperty = "last"
)

var storeLog = log.WithField("component", "RangeStore")

// SavedRange 宿主保存的上一次选区
type SavedRange struct {
	Lower float64 `yaml:"lower"`
	Upper float64 `yaml:"upper"`
}

// ClampTo 将选区限制在 [minimum, maximum] 内并保持 lower <= upper
func (r SavedRange) ClampTo(minimum, maximum float64) SavedRange {
	lower := math.Min(math.Max(r.Lower, minimum), maximum)
	upper := math.Min(math.Max(r.Upper, lower), maximum)
	return SavedRange{Lower: lower, Upper: upper}
}

// RangeStore 选区持久化（宿主界面使用，控件本身不持久化任何数据）
type RangeStore struct {
	gdataManager *gdata.Manager // gdata 跨平台存储管理器，可为 nil（降级模式）
	memory       *SavedRange    // 降级模式下的内存副本
}

// NewRangeStore 创建选区存储
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式，仅保存在内存）
func NewRangeStore(gdataManager *gdata.Manager) *RangeStore {
	return &RangeStore{gdataManager: gdataManager}
}

// OpenRangeStore 打开指定应用名下的 gdata 存储
// 打开失败时返回降级模式的存储和错误，调用方可以继续使用
func OpenRangeStore(appName string) (*RangeStore, error) {
	if err := utils.EnsureStorageDir(appName); err != nil {
		return NewRangeStore(nil), fmt.Errorf("failed to prepare storage: %w", err)
	}

	manager, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return NewRangeStore(nil), fmt.Errorf("failed to open gdata: %w", err)
	}

	storeLog.Debugf("storage opened (app=%s, root=%q)", appName, utils.GetStoragePath())
	return NewRangeStore(manager), nil
}

// IsPersistent 返回是否可以持久化
func (s *RangeStore) IsPersistent() bool {
	return s.gdataManager != nil
}

// Load 读取上一次保存的选区
//
// 返回：
//   - SavedRange: 保存的选区
//   - bool: 是否存在保存的选区
//   - error: 读取或反序列化失败
func (s *RangeStore) Load() (SavedRange, bool, error) {
	if s.gdataManager == nil {
		if s.memory == nil {
			return SavedRange{}, false, nil
		}
		return *s.memory, true, nil
	}

	if !s.gdataManager.ObjectPropExists(rangeObject, rangeProperty) {
		return SavedRange{}, false, nil
	}

	data, err := s.gdataManager.LoadObjectProp(rangeObject, rangeProperty)
	if err != nil {
		return SavedRange{}, false, fmt.Errorf("failed to load range: %w", err)
	}

	var saved SavedRange
	if err := yaml.Unmarshal(data, &saved); err != nil {
		return SavedRange{}, false, fmt.Errorf("failed to unmarshal range: %w", err)
	}
	return saved, true, nil
}

// Save 保存选区
func (s *RangeStore) Save(r SavedRange) error {
	if s.gdataManager == nil {
		s.memory = &r
		return nil
	}

	data, err := yaml.Marshal(r)
	if err != nil {
		return fmt.Errorf("failed to marshal range: %w", err)
	}

	if err := s.gdataManager.SaveObjectProp(rangeObject, rangeProperty, data); err != nil {
		return fmt.Errorf("failed to save range: %w", err)
	}

	storeLog.Debugf("range saved: lower=%g upper=%g", r.Lower, r.Upper)
	return nil
}

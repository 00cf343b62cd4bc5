// Package snapshot reads simulation snapshots from a CSV directory or a JSON document.
package snapshot

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"glpmap/internal/domain/entity"
	"glpmap/internal/util"

	"github.com/pkg/errors"
)

// CSV file names of a snapshot directory.
const (
	WarehousesFile = "warehouses.csv"
	OrdersFile     = "orders.csv"
	BlockagesFile  = "blockages.csv"
	VehiclesFile   = "vehicles.csv"
	WaypointsFile  = "waypoints.csv"
)

// Headers lists the expected header row of every CSV file.
//
//nolint:gochecknoglobals
var Headers = map[string][]string{
	WarehousesFile: {"id", "name", "kind", "x", "y", "capacity_m3"},
	OrdersFile:     {"id", "code", "client", "x", "y", "release", "deadline", "volume_m3"},
	BlockagesFile:  {"id", "start", "end", "nodes"},
	VehiclesFile:   {"id", "code", "type", "current_load", "breakdown"},
	WaypointsFile:  {"vehicle_id", "seq", "x", "y", "start_time", "arrive_time", "is_depot", "is_order_stop", "order_id"},
}

// optionalFiles may be missing from a directory.
//
//nolint:gochecknoglobals
var optionalFiles = map[string]bool{
	BlockagesFile: true,
	WaypointsFile: true,
}

// CSVLoader handles loading of a snapshot from a CSV directory
type CSVLoader struct {
	dataDir         string
	verifyChecksums bool
}

// NewCSVLoader creates a new CSV loader for the given data directory
func NewCSVLoader(dataDir string, verifyChecksums bool) *CSVLoader {
	return &CSVLoader{dataDir: dataDir, verifyChecksums: verifyChecksums}
}

// DataDir returns the directory the loader reads from.
func (l *CSVLoader) DataDir() string {
	return l.dataDir
}

// Load reads metadata.json and every CSV file, then validates the assembled snapshot.
func (l *CSVLoader) Load() (*entity.Snapshot, error) {
	metadata, err := LoadMetadata(l.dataDir)
	if err != nil {
		return nil, err
	}
	if err := metadata.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid metadata")
	}
	if l.verifyChecksums {
		if err := metadata.VerifyFiles(l.dataDir); err != nil {
			return nil, err
		}
	}

	snapshot := &entity.Snapshot{
		Name: metadata.Name,
		Grid: metadata.Grid,
	}

	if snapshot.Warehouses, err = l.LoadWarehouses(); err != nil {
		return nil, err
	}
	if snapshot.Orders, err = l.LoadOrders(); err != nil {
		return nil, err
	}
	if snapshot.Blockages, err = l.LoadBlockages(); err != nil {
		return nil, err
	}
	if snapshot.Vehicles, err = l.LoadVehicles(); err != nil {
		return nil, err
	}

	if err := snapshot.Validate(); err != nil {
		return nil, err
	}

	return snapshot, nil
}

// LoadWarehouses loads warehouses.csv
// Expected CSV format: id,name,kind,x,y,capacity_m3
func (l *CSVLoader) LoadWarehouses() ([]*entity.Warehouse, error) {
	var warehouses []*entity.Warehouse

	err := l.readFile(WarehousesFile, func(record []string, lineNum int) error {
		x, y, err := parsePoint(record[3], record[4], lineNum)
		if err != nil {
			return err
		}
		capacity, err := parseFloat(record[5], "capacity_m3", lineNum)
		if err != nil {
			return err
		}

		warehouses = append(warehouses, &entity.Warehouse{
			ID:         record[0],
			Name:       record[1],
			Kind:       entity.WarehouseKind(strings.ToLower(record[2])),
			Position:   entity.LogicalPoint{X: x, Y: y},
			CapacityM3: capacity,
		})

		return nil
	})

	return warehouses, err
}

// LoadOrders loads orders.csv
// Expected CSV format: id,code,client,x,y,release,deadline,volume_m3
func (l *CSVLoader) LoadOrders() ([]*entity.Order, error) {
	var orders []*entity.Order

	err := l.readFile(OrdersFile, func(record []string, lineNum int) error {
		x, y, err := parsePoint(record[3], record[4], lineNum)
		if err != nil {
			return err
		}
		release, err := parseClock(record[5], "release", lineNum)
		if err != nil {
			return err
		}
		deadline, err := parseClock(record[6], "deadline", lineNum)
		if err != nil {
			return err
		}
		volume, err := parseFloat(record[7], "volume_m3", lineNum)
		if err != nil {
			return err
		}

		orders = append(orders, &entity.Order{
			ID:       record[0],
			Code:     record[1],
			Client:   record[2],
			Position: entity.LogicalPoint{X: x, Y: y},
			Release:  entity.SimTimeFromMinutes(release),
			Deadline: entity.SimTimeFromMinutes(deadline),
			VolumeM3: volume,
		})

		return nil
	})

	return orders, err
}

// LoadBlockages loads blockages.csv
// Expected CSV format: id,start,end,nodes with nodes as "x,y;x,y;..."
func (l *CSVLoader) LoadBlockages() ([]*entity.Blockage, error) {
	var blockages []*entity.Blockage

	err := l.readFile(BlockagesFile, func(record []string, lineNum int) error {
		start, err := parseClock(record[1], "start", lineNum)
		if err != nil {
			return err
		}
		end, err := parseClock(record[2], "end", lineNum)
		if err != nil {
			return err
		}
		nodes, err := parseNodes(record[3], lineNum)
		if err != nil {
			return err
		}

		blockages = append(blockages, &entity.Blockage{
			ID:    record[0],
			Start: entity.SimTimeFromMinutes(start),
			End:   entity.SimTimeFromMinutes(end),
			Nodes: nodes,
		})

		return nil
	})

	return blockages, err
}

type seqWaypoint struct {
	seq int
	wp  entity.RouteWaypoint
}

// LoadVehicles loads vehicles.csv and attaches the routes of waypoints.csv
// Expected CSV format: id,code,type,current_load,breakdown
func (l *CSVLoader) LoadVehicles() ([]*entity.Vehicle, error) {
	var vehicles []*entity.Vehicle

	err := l.readFile(VehiclesFile, func(record []string, lineNum int) error {
		load, err := parseFloat(record[3], "current_load", lineNum)
		if err != nil {
			return err
		}
		breakdown, err := parseBool(record[4], "breakdown", lineNum)
		if err != nil {
			return err
		}

		vehicles = append(vehicles, &entity.Vehicle{
			ID:          record[0],
			Code:        record[1],
			Type:        record[2],
			CurrentLoad: load,
			Breakdown:   breakdown,
		})

		return nil
	})
	if err != nil {
		return nil, err
	}

	routes, err := l.loadWaypoints()
	if err != nil {
		return nil, err
	}

	byID := make(map[string]*entity.Vehicle, len(vehicles))
	for _, v := range vehicles {
		byID[v.ID] = v
	}
	for vehicleID, waypoints := range routes {
		v, ok := byID[vehicleID]
		if !ok {
			return nil, errors.Errorf("waypoints.csv references unknown vehicle %s", vehicleID)
		}

		sort.SliceStable(waypoints, func(i, j int) bool { return waypoints[i].seq < waypoints[j].seq })
		v.Route = make([]entity.RouteWaypoint, len(waypoints))
		for i, w := range waypoints {
			v.Route[i] = w.wp
		}
	}

	return vehicles, nil
}

// loadWaypoints loads waypoints.csv grouped by vehicle
// Expected CSV format: vehicle_id,seq,x,y,start_time,arrive_time,is_depot,is_order_stop,order_id
func (l *CSVLoader) loadWaypoints() (map[string][]seqWaypoint, error) {
	routes := make(map[string][]seqWaypoint)

	err := l.readFile(WaypointsFile, func(record []string, lineNum int) error {
		seq, err := parseInt(record[1], "seq", lineNum)
		if err != nil {
			return err
		}
		x, y, err := parsePoint(record[2], record[3], lineNum)
		if err != nil {
			return err
		}
		start, err := parseClock(record[4], "start_time", lineNum)
		if err != nil {
			return err
		}
		arrive, err := parseClock(record[5], "arrive_time", lineNum)
		if err != nil {
			return err
		}
		isDepot, err := parseBool(record[6], "is_depot", lineNum)
		if err != nil {
			return err
		}
		isStop, err := parseBool(record[7], "is_order_stop", lineNum)
		if err != nil {
			return err
		}

		routes[record[0]] = append(routes[record[0]], seqWaypoint{
			seq: seq,
			wp: entity.RouteWaypoint{
				X:           x,
				Y:           y,
				StartTime:   start,
				ArriveTime:  arrive,
				IsDepot:     isDepot,
				IsOrderStop: isStop,
				OrderID:     record[8],
			},
		})

		return nil
	})

	return routes, err
}

// readFile streams the records of name after checking its header row.
func (l *CSVLoader) readFile(name string, fn func(record []string, lineNum int) error) error {
	path := filepath.Join(l.dataDir, name)
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) && optionalFiles[name] {
			return nil
		}

		return errors.WithStack(err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return errors.Wrapf(err, "read %s header", name)
	}
	if err := CheckHeader(name, header); err != nil {
		return err
	}

	columns := len(Headers[name])
	lineNum := 1 // Start at 1 because we read the header

	for {
		record, readErr := reader.Read()
		if errors.Is(readErr, io.EOF) {
			break
		}
		if readErr != nil {
			return errors.Wrapf(readErr, "read %s", name)
		}
		lineNum++

		if len(record) < columns {
			return errors.Errorf("invalid %s format at line %d: expected %d columns, got %d", name, lineNum, columns, len(record))
		}
		for i := range record {
			record[i] = strings.TrimSpace(record[i])
		}

		if err := fn(record, lineNum); err != nil {
			return errors.WithMessage(err, name)
		}
	}

	return nil
}

// CheckHeader compares a header row with the expected columns of name, ignoring case.
func CheckHeader(name string, header []string) error {
	expected, ok := Headers[name]
	if !ok {
		return errors.Errorf("unknown snapshot file %s", name)
	}
	if len(header) < len(expected) {
		return errors.Errorf("%s header: expected %d columns, got %d", name, len(expected), len(header))
	}

	for i, col := range expected {
		if !strings.EqualFold(strings.TrimSpace(header[i]), col) {
			return errors.Errorf("%s header: column %d is %q, expected %q", name, i+1, header[i], col)
		}
	}

	return nil
}

func parseInt(value, field string, lineNum int) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid %s at line %d", field, lineNum)
	}

	return n, nil
}

func parseFloat(value, field string, lineNum int) (float64, error) {
	if value == "" {
		return 0, nil
	}

	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid %s at line %d", field, lineNum)
	}

	return f, nil
}

func parseBool(value, field string, lineNum int) (bool, error) {
	if value == "" {
		return false, nil
	}

	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, errors.Wrapf(err, "invalid %s at line %d", field, lineNum)
	}

	return b, nil
}

func parseClock(value, field string, lineNum int) (int, error) {
	minutes, err := util.ParseSimClock(value)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid %s at line %d", field, lineNum)
	}

	return minutes, nil
}

func parsePoint(xs, ys string, lineNum int) (x, y int, err error) {
	if x, err = parseInt(xs, "x", lineNum); err != nil {
		return 0, 0, err
	}
	if y, err = parseInt(ys, "y", lineNum); err != nil {
		return 0, 0, err
	}

	return x, y, nil
}

func parseNodes(value string, lineNum int) ([]entity.LogicalPoint, error) {
	var nodes []entity.LogicalPoint

	for _, pair := range strings.Split(value, ";") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}

		xs, ys, ok := strings.Cut(pair, ",")
		if !ok {
			return nil, errors.Errorf("invalid node %q at line %d: expected x,y", pair, lineNum)
		}
		x, y, err := parsePoint(strings.TrimSpace(xs), strings.TrimSpace(ys), lineNum)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, entity.LogicalPoint{X: x, Y: y})
	}

	if len(nodes) == 0 {
		return nil, errors.Errorf("blockage without nodes at line %d", lineNum)
	}

	return nodes, nil
}

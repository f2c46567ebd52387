package main

import (
	"fmt"
	"io"

	"github.com/nerrad567/gray-logic-hub/internal/infrastructure/config"
)

// demoSlots are the slots the demo sequence drives.
const (
	slotLivingRoom = 0
	slotBedroom    = 1
	slotMusic      = 2
	slotThermostat = 3
	slotSmartTV    = 4
)

// runDemo replays the reference sequence against the built home: three
// devices on, thermostat on and up twice, two undos, two offs, and finally
// a Smart TV light added and bound at runtime.
func runDemo(a *app, out io.Writer) error {
	h := a.home.Hub
	section := func(title string) { fmt.Fprintf(out, "\n=== %s ===\n", title) }
	step := func(title string) { fmt.Fprintf(out, "\n%s\n", title) }
	describeAll := func() {
		for _, d := range a.home.Devices.List() {
			fmt.Fprintf(out, "  %s\n", d.Describe())
		}
	}

	fmt.Fprintln(out, "=== Gray Logic Hub ===")
	a.publishStatus()

	section("Starting Demo")
	step("1. Turning on Living Room Light:")
	h.TriggerActivate(slotLivingRoom)
	step("2. Turning on Bedroom Light:")
	h.TriggerActivate(slotBedroom)
	step("3. Turning on Music:")
	h.TriggerActivate(slotMusic)

	step("4. Turn on Thermostat and increase temperature:")
	for _, th := range a.home.Thermostats() {
		th.Activate()
	}
	h.TriggerActivate(slotThermostat)
	h.TriggerActivate(slotThermostat)

	section("Device Status Report")
	describeAll()

	section("Testing Undo")
	step("Undoing last command (temperature decrease):")
	h.UndoLast()
	step("Undoing again (temperature decrease):")
	h.UndoLast()

	section("Testing Off Commands")
	step("Turning off Living Room Light:")
	h.TriggerDeactivate(slotLivingRoom)
	step("Turning off Music:")
	h.TriggerDeactivate(slotMusic)

	section("Final Device Status")
	describeAll()

	section("Extensibility Demo")
	step("Adding new Smart TV to slot 4...")
	tv, err := a.home.AddDevice(config.DeviceConfig{ID: "smart-tv", Kind: "light", Location: "Smart TV"})
	if err != nil {
		return err
	}
	if err := a.home.Bind(slotSmartTV, tv.ID()); err != nil {
		return err
	}
	step("Turning on Smart TV:")
	h.TriggerActivate(slotSmartTV)
	fmt.Fprintf(out, "  %s\n", tv.Describe())

	a.publishStatus()
	section("Demo Complete")
	return nil
}

package config

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"

	"github.com/playkit-ui/playkit/filesystem"
	"github.com/playkit-ui/playkit/key"
)

func TestSetup(t *testing.T) {
	Convey("Config Setup", t, func() {
		filesystem.SetMemMapFs()
		defer filesystem.SetOsFs()

		Convey("Should initialize without error", func() {
			err := Setup()
			So(err, ShouldBeNil)
		})

		Convey("Should have default values populated", func() {
			So(Setup(), ShouldBeNil)
			for name := range Default {
				So(viper.Get(name), ShouldNotBeNil)
			}
		})

		Convey("Should register the documented number of fields", func() {
			So(len(Default), ShouldEqual, key.DefinedFieldsCount)
		})

		Convey("EnvKeyReplacer should convert dots to underscores", func() {
			result := EnvKeyReplacer.Replace("controls.hide.delay")
			So(result, ShouldEqual, "controls_hide_delay")
		})

		Convey("Env should prefix keys with the application identifier", func() {
			f := Default[key.ControlsHideDelayMS]
			So(f.Env(), ShouldEqual, "PLAYKIT_CONTROLS_HIDE_DELAY_MS")
		})
	})
}

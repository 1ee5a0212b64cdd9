// Copyright 2017 Google Inc. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package exclusion

// TestSourceTree is a trimmed down vendor src/ directory with at least one file for
// every subsystem and every family backend the rules know about.
var TestSourceTree = []string{
	"SDL.c",
	"SDL_assert.c",
	"SDL_error.c",
	"SDL_log.c",
	"atomic/SDL_atomic.c",
	"atomic/SDL_spinlock.c",
	"audio/SDL_audio.c",
	"audio/aaudio/SDL_aaudio.c",
	"audio/alsa/SDL_alsa_audio.c",
	"audio/coreaudio/SDL_coreaudio.m",
	"audio/directsound/SDL_directsound.c",
	"audio/dummy/SDL_dummyaudio.c",
	"audio/emscripten/SDL_emscriptenaudio.c",
	"audio/pulseaudio/SDL_pulseaudio.c",
	"audio/sun/SDL_sunaudio.c",
	"audio/wasapi/SDL_wasapi.c",
	"core/android/SDL_android.c",
	"core/linux/SDL_evdev.c",
	"core/windows/SDL_windows.c",
	"cpuinfo/SDL_cpuinfo.c",
	"dynapi/SDL_dynapi.c",
	"events/SDL_events.c",
	"events/SDL_keyboard.c",
	"filesystem/cocoa/SDL_sysfilesystem.m",
	"filesystem/dummy/SDL_sysfilesystem.c",
	"filesystem/emscripten/SDL_sysfilesystem.c",
	"filesystem/unix/SDL_sysfilesystem.c",
	"filesystem/windows/SDL_sysfilesystem.c",
	"haptic/SDL_haptic.c",
	"haptic/darwin/SDL_syshaptic.c",
	"haptic/dummy/SDL_syshaptic.c",
	"haptic/linux/SDL_syshaptic.c",
	"haptic/windows/SDL_windowshaptic.c",
	"hidapi/SDL_hidapi.c",
	"hidapi/linux/hid.c",
	"hidapi/mac/hid.c",
	"hidapi/windows/hid.c",
	"joystick/SDL_joystick.c",
	"joystick/darwin/SDL_iokitjoystick.c",
	"joystick/dummy/SDL_sysjoystick.c",
	"joystick/hidapi/SDL_hidapijoystick.c",
	"joystick/iphoneos/SDL_mfijoystick.m",
	"joystick/linux/SDL_sysjoystick.c",
	"joystick/windows/SDL_windowsjoystick.c",
	"loadso/dlopen/SDL_sysloadso.c",
	"loadso/dummy/SDL_sysloadso.c",
	"loadso/windows/SDL_sysloadso.c",
	"locale/SDL_locale.c",
	"locale/macos/SDL_syslocale.m",
	"locale/unix/SDL_syslocale.c",
	"locale/windows/SDL_syslocale.c",
	"misc/SDL_url.c",
	"misc/unix/SDL_sysurl.c",
	"misc/windows/SDL_sysurl.c",
	"render/SDL_render.c",
	"render/direct3d11/SDL_render_d3d11.c",
	"render/metal/SDL_render_metal.m",
	"render/opengl/SDL_render_gl.c",
	"render/opengles2/SDL_render_gles2.c",
	"render/software/SDL_render_sw.c",
	"sensor/SDL_sensor.c",
	"sensor/coremotion/SDL_coremotionsensor.m",
	"sensor/dummy/SDL_dummysensor.c",
	"sensor/windows/SDL_windowssensor.c",
	"stdlib/SDL_string.c",
	"test/SDL_test_common.c",
	"thread/SDL_thread.c",
	"thread/generic/SDL_syscond_cv.c",
	"thread/generic/SDL_sysmutex.c",
	"thread/pthread/SDL_systhread.c",
	"thread/windows/SDL_systhread.c",
	"timer/SDL_timer.c",
	"timer/dummy/SDL_systimer.c",
	"timer/unix/SDL_systimer.c",
	"timer/windows/SDL_systimer.c",
	"video/SDL_egl.c",
	"video/SDL_video.c",
	"video/SDL_vulkan_utils.c",
	"video/android/SDL_androidvideo.c",
	"video/cocoa/SDL_cocoavideo.m",
	"video/cocoa/SDL_cocoavulkan.m",
	"video/dummy/SDL_nullvideo.c",
	"video/emscripten/SDL_emscriptenvideo.c",
	"video/kmsdrm/SDL_kmsdrmvideo.c",
	"video/offscreen/SDL_offscreenvideo.c",
	"video/vita/SDL_vitavideo.c",
	"video/wayland/SDL_waylandvideo.c",
	"video/windows/SDL_windowsopengl.c",
	"video/windows/SDL_windowsvideo.c",
	"video/windows/SDL_windowsvulkan.c",
	"video/x11/SDL_x11opengl.c",
	"video/x11/SDL_x11video.c",
	"video/x11/SDL_x11vulkan.c",
}

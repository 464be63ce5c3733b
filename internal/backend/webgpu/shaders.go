//go:build windows

package webgpu

// WGSL compute shaders for Philox4x32-10 sampling.
// Using string constants instead of embed for simplicity.

// workgroupSize is the default number of threads per workgroup.
const workgroupSize = 256

// maxWorkgroups is the WebGPU default limit per dispatch dimension.
const maxWorkgroups = 65535

// philoxPrelude is shared by the generation shaders. mulhilo splits the
// 32x32 product into 16-bit halves since WGSL has no 64-bit integers.
// Every generation shader binds the same Params layout:
//
//	size   - number of output elements
//	key    - Philox key
//	offset - first block index (lo, hi)
//	a, b   - distribution parameters (mu, sigma)
const philoxPrelude = `
const M0: u32 = 0xD2511F53u;
const M1: u32 = 0xCD9E8D57u;
const W0: u32 = 0x9E3779B9u;
const W1: u32 = 0xBB67AE85u;

struct Params {
    size: u32,
    key0: u32,
    key1: u32,
    offset_lo: u32,
    offset_hi: u32,
    a: f32,
    b: f32,
    c: f32,
}

fn mulhilo(a: u32, b: u32) -> vec2<u32> {
    let a_lo = a & 0xFFFFu;
    let a_hi = a >> 16u;
    let b_lo = b & 0xFFFFu;
    let b_hi = b >> 16u;
    let p0 = a_lo * b_lo;
    let p1 = a_lo * b_hi;
    let p2 = a_hi * b_lo;
    let p3 = a_hi * b_hi;
    let mid = (p0 >> 16u) + (p1 & 0xFFFFu) + (p2 & 0xFFFFu);
    let hi = p3 + (p1 >> 16u) + (p2 >> 16u) + (mid >> 16u);
    return vec2<u32>(hi, a * b);
}

fn philox(ctr_in: vec4<u32>, key_in: vec2<u32>) -> vec4<u32> {
    var c = ctr_in;
    var k = key_in;
    for (var r = 0u; r < 10u; r = r + 1u) {
        if (r > 0u) {
            k = k + vec2<u32>(W0, W1);
        }
        let p0 = mulhilo(M0, c.x);
        let p1 = mulhilo(M1, c.z);
        c = vec4<u32>(p1.x ^ c.y ^ k.x, p1.y, p0.x ^ c.w ^ k.y, p0.y);
    }
    return c;
}

fn block_counter(block: u32, offset_lo: u32, offset_hi: u32) -> vec4<u32> {
    let lo = offset_lo + block;
    let carry = select(0u, 1u, lo < offset_lo);
    return vec4<u32>(lo, offset_hi + carry, 0u, 0u);
}

fn to_unit(x: u32) -> f32 {
    return f32(x >> 8u) * (1.0 / 16777216.0);
}

fn to_unit_open(x: u32) -> f32 {
    return (f32(x >> 8u) + 1.0) * (1.0 / 16777216.0);
}
`

// uniformShader writes U[0, 1) values, four per Philox block.
const uniformShader = philoxPrelude + `
@group(0) @binding(0) var<storage, read_write> result: array<f32>;
@group(0) @binding(1) var<uniform> params: Params;

@compute @workgroup_size(256)
fn main(@builtin(global_invocation_id) global_id: vec3<u32>) {
    let block = global_id.x;
    let base = block * 4u;
    if (base >= params.size) {
        return;
    }
    var w = philox(block_counter(block, params.offset_lo, params.offset_hi), vec2<u32>(params.key0, params.key1));
    for (var lane = 0u; lane < 4u; lane = lane + 1u) {
        let j = base + lane;
        if (j < params.size) {
            result[j] = to_unit(w[lane]);
        }
    }
}
`

// normalShader writes N(a, b^2) values with the trigonometric Box-Muller
// transform, two normals per word pair.
const normalShader = philoxPrelude + `
@group(0) @binding(0) var<storage, read_write> result: array<f32>;
@group(0) @binding(1) var<uniform> params: Params;

fn box_muller(x: u32, y: u32) -> vec2<f32> {
    let r = sqrt(-2.0 * log(to_unit_open(x)));
    let theta = 6.283185307179586 * to_unit(y);
    return vec2<f32>(r * cos(theta), r * sin(theta));
}

@compute @workgroup_size(256)
fn main(@builtin(global_invocation_id) global_id: vec3<u32>) {
    let block = global_id.x;
    let base = block * 4u;
    if (base >= params.size) {
        return;
    }
    let w = philox(block_counter(block, params.offset_lo, params.offset_hi), vec2<u32>(params.key0, params.key1));
    let z01 = box_muller(w.x, w.y);
    let z23 = box_muller(w.z, w.w);
    var z = vec4<f32>(z01.x, z01.y, z23.x, z23.y);
    for (var lane = 0u; lane < 4u; lane = lane + 1u) {
        let j = base + lane;
        if (j < params.size) {
            result[j] = params.a + z[lane] * params.b;
        }
    }
}
`

// transferShader rescales data in place from [0, 1) to [a, b). mix keeps
// each term within the bounds, so b-a is never formed and cannot overflow.
// The result is clamped to [a, c], where c is the largest float32 below b.
const transferShader = `
struct TransferParams {
    size: u32,
    a: f32,
    b: f32,
    c: f32,
}

@group(0) @binding(0) var<storage, read_write> data: array<f32>;
@group(0) @binding(1) var<uniform> params: TransferParams;

@compute @workgroup_size(256)
fn main(@builtin(global_invocation_id) global_id: vec3<u32>) {
    let idx = global_id.x;
    if (idx < params.size) {
        data[idx] = clamp(mix(params.a, params.b, data[idx]), params.a, params.c);
    }
}
`
